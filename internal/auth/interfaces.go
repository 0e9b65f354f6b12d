package auth

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for session token issuance and
// verification. PasetoService (PASETO v4.local) is the only implementation.
type TokenService interface {
	CreateToken(userID uuid.UUID, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}
