package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/just-nibble/github-link/internal/adapters/http/dtos"
	"github.com/just-nibble/github-link/internal/core/service"
	"github.com/just-nibble/github-link/pkg/response"
)

type ConnectionHandler struct {
	service *service.ConnectionService
}

func NewConnectionHandler(service *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{service: service}
}

// Authorize starts an OAuth flow and returns the URL the client must send
// the user to for consent
func (h *ConnectionHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	req, err := h.service.BeginAuthorization()
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, dtos.AuthorizeResponse{
		URL:   req.URL,
		State: req.State,
	})
}

// Callback completes the flow with the authorization code captured after
// consent: exchange, identity fetch, persisted connection
func (h *ConnectionHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req dtos.CallbackInput

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.Code == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "User id and code are required")
		return
	}

	if req.State != "" && !h.service.ConsumeAuthState(req.State) {
		response.ErrorResponse(w, http.StatusBadRequest, "Unknown authorization state")
		return
	}

	conn, err := h.service.CompleteConnection(r.Context(), req.UserID, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusCreated, conn)
}

// GetConnection returns the user's connection, 404 when none exists
func (h *ConnectionHandler) GetConnection(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "User id is required")
		return
	}

	conn, err := h.service.Get(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if conn == nil {
		response.ErrorResponse(w, http.StatusNotFound, "No connection for user")
		return
	}

	response.SuccessResponse(w, http.StatusOK, conn)
}

// RemoveConnection disconnects the user's GitHub account
func (h *ConnectionHandler) RemoveConnection(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.ErrorResponse(w, http.StatusBadRequest, "User id is required")
		return
	}

	if err := h.service.Remove(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	response.SuccessResponse(w, http.StatusOK, "Connection removed")
}
