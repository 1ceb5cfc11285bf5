package ports

import "github.com/stockroom/inventory-api/internal/core/domain"

// PasswordHasher turns secrets into salted one-way digests.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	// Verify must compare in constant time.
	Verify(secret, digest string) bool
}

// TokenService issues and verifies stateless session tokens.
// Verify returns domain.ErrUnauthorized for every kind of invalid token.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	Verify(token string) (*domain.Claims, error)
}
