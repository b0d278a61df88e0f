package auth

import "github.com/launchvest/launchvest/internal/domain/entity"

// TokenClaims is the identity carried by a verified bearer token
type TokenClaims struct {
	UserID uint64
	Role   entity.Role
}

// PasswordHasher hashes and verifies user credentials
type PasswordHasher interface {
	// Hash returns a one-way hash of the plain password
	Hash(plain string) (string, error)
	// Verify reports whether plain matches the stored hash
	Verify(hash, plain string) bool
}

// TokenService issues and verifies bearer tokens carrying {userId, role}
type TokenService interface {
	// Issue signs a token for the given identity; tokens expire after the
	// service's configured lifetime (7 days in this deployment)
	Issue(userID uint64, role entity.Role) (string, error)
	// Verify parses and validates a token, returning its claims
	Verify(token string) (*TokenClaims, error)
}
