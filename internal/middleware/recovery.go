package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// Recovery converts handler panics into opaque 500 responses. The owner
// scope is logged when present so a crashing request can be tied back to
// the tree it was touching.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
						"method", r.Method,
						"owner", httputil.GetOwnerID(r),
						"stack", string(debug.Stack()),
					)

					httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
