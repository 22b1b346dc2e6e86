package ports

import (
	"context"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

// CreateAppointmentInput carries all data needed to book an appointment.
type CreateAppointmentInput struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Status    domain.AppointmentStatus
	// Principal is the authenticated caller; the service enforces that
	// patients only book for themselves.
	Principal domain.Principal
}

// ListAppointmentsInput scopes a listing to one party. The service enforces
// that doctors and patients only see their own lists; admins see any.
type ListAppointmentsInput struct {
	PartyID   string
	Principal domain.Principal
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*domain.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error)
}

// AppointmentService defines the appointment use cases.
type AppointmentService interface {
	Create(ctx context.Context, input CreateAppointmentInput) (*domain.Appointment, error)
	ListByDoctor(ctx context.Context, input ListAppointmentsInput) ([]*domain.Appointment, error)
	ListByPatient(ctx context.Context, input ListAppointmentsInput) ([]*domain.Appointment, error)
}
