package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const ownerIDKey contextKey = "ownerID"

// WithOwnerID returns a request whose context carries the resolved owner
// scope. Set by the auth middleware, read by every handler.
func WithOwnerID(r *http.Request, ownerID string) *http.Request {
	ctx := context.WithValue(r.Context(), ownerIDKey, ownerID)
	return r.WithContext(ctx)
}

// GetOwnerID retrieves the owner scope from context, or "" if the
// request never passed the access boundary.
func GetOwnerID(r *http.Request) string {
	ownerID, _ := r.Context().Value(ownerIDKey).(string)
	return ownerID
}
