package ports

import (
	"context"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email uniqueness is enforced by the store's unique index, never by a
// check-then-write in service code.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists the user. When doctor is non-nil the profile is
	// written in the same transaction: both commit or neither does.
	Create(ctx context.Context, user *domain.User, doctor *domain.Doctor) (*domain.User, error)
}
