package ports

import (
	"context"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

// DoctorRepository defines persistence operations for doctor profiles.
type DoctorRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
}

// DoctorService exposes the public doctor directory.
type DoctorService interface {
	ListDoctors(ctx context.Context) ([]*domain.Doctor, error)
	GetDoctor(ctx context.Context, userID string) (*domain.Doctor, error)
}
