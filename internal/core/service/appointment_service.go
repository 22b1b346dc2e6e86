package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// AppointmentService implements appointment booking and per-party listings.
// No slot or conflict logic lives here; an appointment is a plain record.
type AppointmentService struct {
	repo    ports.AppointmentRepository
	doctors ports.DoctorRepository
	logger  zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, doctors ports.DoctorRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, doctors: doctors, logger: logger}
}

func (s *AppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	// Patients book for themselves only; admins may book on a patient's behalf.
	if input.Principal.Role != domain.RoleAdmin && input.PatientID != input.Principal.ID {
		return nil, domain.ErrForbidden
	}

	if _, err := s.doctors.FindByUserID(ctx, input.DoctorID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.AppointmentPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	appointment := &domain.Appointment{
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Time:      input.Time,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		s.logger.Error().Err(err).Str("doctor_id", input.DoctorID).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", created.ID).
		Str("doctor_id", created.DoctorID).
		Str("patient_id", created.PatientID).
		Msg("appointment created")

	return created, nil
}

func (s *AppointmentService) ListByDoctor(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
	if input.Principal.Role != domain.RoleAdmin && input.PartyID != input.Principal.ID {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByDoctor(ctx, input.PartyID)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
	if input.Principal.Role != domain.RoleAdmin && input.PartyID != input.Principal.ID {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByPatient(ctx, input.PartyID)
}
