package auth

import (
	"github.com/SKirov82/data-room-application-mvp/internal/domain/models"
)

// TokenVerifier is the access boundary's contract: turn a bearer token
// into verified claims or fail. The rest of the system only ever sees
// the resolved owner scope, never the token.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*models.AccessClaims, error)
	Close() error
}
