package middleware

import (
	"net/http"
	"strings"

	"github.com/SKirov82/data-room-application-mvp/internal/auth"
	"github.com/SKirov82/data-room-application-mvp/internal/httputil"
)

// Auth resolves the calling identity from a bearer token and injects the
// owner scope into the request context. Requests without a valid token
// never reach a tree or search handler.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Health checks stay open.
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, httputil.WithOwnerID(r, claims.Subject))
		})
	}
}
