package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/SKirov82/data-room-application-mvp/internal/domain"
	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrContentMissing):
		httputil.RespondError(w, http.StatusGone, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrTooLarge):
		httputil.RespondError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, domain.ErrUnsupportedType):
		httputil.RespondError(w, http.StatusUnsupportedMediaType, err.Error())
	default:
		// ErrInvariant and anything unexpected stay opaque.
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireOwner extracts the owner scope placed in the context by the
// auth middleware. Reaching a handler without one means the middleware
// chain is misassembled, so answer 401 rather than guessing.
func requireOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID := httputil.GetOwnerID(r)
	if ownerID == "" {
		httputil.RespondError(w, http.StatusUnauthorized, "no resolved identity")
		return "", false
	}
	return ownerID, true
}

// pathID extracts the {id} route parameter and validates it as a uuid.
// Ids are uuid columns; rejecting garbage here keeps it out of the
// repository layer, where it would surface as an opaque query error.
func pathID(w http.ResponseWriter, r *http.Request, label string) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid "+label+" ID")
		return "", false
	}
	return id, true
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
