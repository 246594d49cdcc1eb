package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/just-nibble/github-link/internal/adapters/http/dtos"
	"github.com/just-nibble/github-link/internal/core/service"
	"github.com/just-nibble/github-link/pkg/response"
)

type ProjectHandler struct {
	service *service.ProjectService
}

func NewProjectHandler(service *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProject promotes a repository to a tracked project
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateProjectInput

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.Repository.ID == 0 {
		response.ErrorResponse(w, http.StatusBadRequest, "User id and repository are required")
		return
	}

	project, err := h.service.CreateFromRepository(r.Context(), req.UserID, req.Repository.ToAPI(), req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusCreated, project)
}

// ListProjects returns the user's projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "User id is required")
		return
	}

	projects, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, projects)
}

// UpdateProject edits a project's name and description
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	projectID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if userID == "" || err != nil || projectID <= 0 {
		response.ErrorResponse(w, http.StatusBadRequest, "User id and project id are required")
		return
	}

	var req dtos.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.service.Update(r.Context(), userID, uint(projectID), req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	if project == nil {
		response.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}

	response.SuccessResponse(w, http.StatusOK, project)
}

// DeleteProject removes a project
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	projectID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if userID == "" || err != nil || projectID <= 0 {
		response.ErrorResponse(w, http.StatusBadRequest, "User id and project id are required")
		return
	}

	if err := h.service.Delete(r.Context(), userID, uint(projectID)); err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, "Project deleted")
}
