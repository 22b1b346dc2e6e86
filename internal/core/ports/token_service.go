package ports

import "github.com/doctorconnect/booking-system/internal/core/domain"

// TokenService issues and validates the stateless session tokens. Tokens
// are self-contained: validity is a function of signature and expiry only,
// never a server-side lookup.
type TokenService interface {
	Issue(userID, email string, role domain.Role) (string, error)
	// Validate checks signature and expiry. Any failure — malformed token,
	// wrong key, expired — collapses to domain.ErrTokenInvalid; parse
	// internals never cross this boundary.
	Validate(token string) (*domain.Claims, error)
}

// PasswordHasher abstracts the one-way credential hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
