package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Authenticator issues and checks access tokens of review author accounts.
type Authenticator interface {
	// GenerateToken is not served by the API: account tokens are issued by
	// the identity side. It backs tests and token-minting tools.
	GenerateToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (*jwt.Token, error)
	UserID(token *jwt.Token) (uuid.UUID, error)
}
