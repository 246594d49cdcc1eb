package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/just-nibble/github-link/internal/core/domain/entities"
	"github.com/just-nibble/github-link/internal/core/service"
	"github.com/just-nibble/github-link/pkg/response"
)

type CatalogHandler struct {
	connections *service.ConnectionService
	catalog     *service.CatalogService
}

func NewCatalogHandler(connections *service.ConnectionService, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{connections: connections, catalog: catalog}
}

// connection resolves the caller's stored connection; a missing one is
// reported to the client as 404
func (h *CatalogHandler) connection(w http.ResponseWriter, r *http.Request) *entities.Connection {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "User id is required")
		return nil
	}

	conn, err := h.connections.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return nil
	}
	if conn == nil {
		response.ErrorResponse(w, http.StatusNotFound, "No connection for user")
		return nil
	}

	return conn
}

// ListRepositories lists the user's repositories after validating the
// stored token; an invalid token yields 409 so the client can prompt a
// reconnect
func (h *CatalogHandler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	conn := h.connection(w, r)
	if conn == nil {
		return
	}

	repos, err := h.catalog.ListRepositoriesWithValidation(r.Context(), conn)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, repos)
}

// ListIssues fetches a repository's issues and applies the client-side
// filter criteria from the query string: state, labels (comma separated),
// and q (free-text search)
func (h *CatalogHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	conn := h.connection(w, r)
	if conn == nil {
		return
	}

	owner := r.URL.Query().Get("owner")
	repo := r.URL.Query().Get("repo")
	if owner == "" || repo == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "Owner and repository name are required")
		return
	}

	state := r.URL.Query().Get("state")
	issues, err := h.catalog.ListIssues(r.Context(), conn.AccessToken, owner, repo, state)
	if err != nil {
		writeError(w, err)
		return
	}

	filter := service.IssueFilter{
		State: service.IssueStateFilter(state),
		Query: r.URL.Query().Get("q"),
	}
	if labels := r.URL.Query().Get("labels"); labels != "" {
		filter.Labels = strings.Split(labels, ",")
	}

	response.SuccessResponse(w, http.StatusOK, service.FilterIssues(issues, filter))
}

// GetIssue fetches a single issue together with its body split into
// renderable text and media segments
func (h *CatalogHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	conn := h.connection(w, r)
	if conn == nil {
		return
	}

	owner := r.URL.Query().Get("owner")
	repo := r.URL.Query().Get("repo")
	number, err := strconv.Atoi(r.URL.Query().Get("number"))
	if owner == "" || repo == "" || err != nil || number <= 0 {
		response.ErrorResponse(w, http.StatusBadRequest, "Owner, repository name and issue number are required")
		return
	}

	issue, err := h.catalog.GetIssue(r.Context(), conn.AccessToken, owner, repo, number)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, map[string]interface{}{
		"issue":    issue,
		"segments": service.SplitBodySegments(issue.Body),
	})
}

// ListIssueComments fetches the comments for an issue
func (h *CatalogHandler) ListIssueComments(w http.ResponseWriter, r *http.Request) {
	conn := h.connection(w, r)
	if conn == nil {
		return
	}

	owner := r.URL.Query().Get("owner")
	repo := r.URL.Query().Get("repo")
	number, err := strconv.Atoi(r.URL.Query().Get("number"))
	if owner == "" || repo == "" || err != nil || number <= 0 {
		response.ErrorResponse(w, http.StatusBadRequest, "Owner, repository name and issue number are required")
		return
	}

	comments, err := h.catalog.ListIssueComments(r.Context(), conn.AccessToken, owner, repo, number)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, comments)
}
