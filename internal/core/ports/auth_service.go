package ports

import (
	"context"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

// AuthResult is returned on successful login or registration.
type AuthResult struct {
	Token string
	User  *domain.User
}

// MeResult is the current-user view. Profile carries the role-specific
// extras loaded through the RoleProfile registry, nil when the role has no
// registered provider.
type MeResult struct {
	User    *domain.User
	Profile any
}

// AuthService defines the login/registration use cases.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, fullName, email, password string, role domain.Role) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*MeResult, error)
}

// RoleProfile is the extension point for per-role enrichment of the
// current-user view. Register one provider per role; roles without a
// provider simply return no profile.
type RoleProfile interface {
	Role() domain.Role
	Load(ctx context.Context, userID string) (any, error)
}
