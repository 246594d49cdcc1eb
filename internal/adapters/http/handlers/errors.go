package handlers

import (
	"errors"
	"net/http"

	"github.com/just-nibble/github-link/pkg/errcodes"
	"github.com/just-nibble/github-link/pkg/response"
)

// writeError maps the error taxonomy onto HTTP status codes. Provider and
// protocol failures are upstream faults, expired connections and
// duplicate projects are conflicts the user can act on.
func writeError(w http.ResponseWriter, err error) {
	var (
		configErr   *errcodes.ConfigurationError
		providerErr *errcodes.ProviderError
		protocolErr *errcodes.ProtocolError
		persistErr  *errcodes.PersistenceError
	)

	switch {
	case errors.Is(err, errcodes.ErrExpiredConnection):
		response.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, errcodes.ErrDuplicateProject):
		response.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, errcodes.ErrNoConnection):
		response.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.As(err, &configErr):
		response.ErrorResponse(w, http.StatusInternalServerError, configErr.Error())
	case errors.As(err, &providerErr):
		response.ErrorResponse(w, http.StatusBadGateway, providerErr.Error())
	case errors.As(err, &protocolErr):
		response.ErrorResponse(w, http.StatusBadGateway, protocolErr.Error())
	case errors.As(err, &persistErr):
		response.ErrorResponse(w, http.StatusInternalServerError, persistErr.Error())
	default:
		response.ErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}
