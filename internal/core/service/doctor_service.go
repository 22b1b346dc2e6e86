package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// DoctorService serves the public doctor directory.
type DoctorService struct {
	repo   ports.DoctorRepository
	logger zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, logger zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, logger: logger}
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]*domain.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list doctors")
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorService) GetDoctor(ctx context.Context, userID string) (*domain.Doctor, error) {
	if userID == "" {
		return nil, domain.ErrDoctorNotFound
	}
	return s.repo.FindByUserID(ctx, userID)
}

// DoctorRoleProfile adapts the doctor repository into the role-profile
// extension point so GET /api/auth/me can include the doctor's own profile.
type DoctorRoleProfile struct {
	repo ports.DoctorRepository
}

func NewDoctorRoleProfile(repo ports.DoctorRepository) *DoctorRoleProfile {
	return &DoctorRoleProfile{repo: repo}
}

func (p *DoctorRoleProfile) Role() domain.Role {
	return domain.RoleDoctor
}

func (p *DoctorRoleProfile) Load(ctx context.Context, userID string) (any, error) {
	return p.repo.FindByUserID(ctx, userID)
}
