package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

type stubAppointmentService struct {
	createFn  func(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error)
	byDoctor  func(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error)
	byPatient func(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error)
}

func (s *stubAppointmentService) Create(ctx context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
	return s.createFn(ctx, input)
}

func (s *stubAppointmentService) ListByDoctor(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
	return s.byDoctor(ctx, input)
}

func (s *stubAppointmentService) ListByPatient(ctx context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
	return s.byPatient(ctx, input)
}

func TestAppointmentHandler_Create_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAppointmentService{
		createFn: func(_ context.Context, input ports.CreateAppointmentInput) (*domain.Appointment, error) {
			if input.Principal.ID != "pat-1" {
				t.Fatalf("principal not passed to service: %+v", input.Principal)
			}
			return &domain.Appointment{
				ID:        "appt-1",
				PatientID: input.PatientID,
				DoctorID:  input.DoctorID,
				Date:      input.Date,
				Time:      input.Time,
				Status:    domain.AppointmentPending,
			}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	req := jsonRequest(http.MethodPost, "/api/appointments",
		`{"patientId":"pat-1","doctorId":"doc-1","date":"2026-09-01","time":"14:30","status":"Pending"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", domain.Principal{ID: "pat-1", Role: domain.RolePatient})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAppointmentHandler_Create_InvalidDate(t *testing.T) {
	e := newEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := jsonRequest(http.MethodPost, "/api/appointments",
		`{"patientId":"pat-1","doctorId":"doc-1","date":"01/09/2026","time":"14:30"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", domain.Principal{ID: "pat-1", Role: domain.RolePatient})

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAppointmentHandler_Create_Unauthenticated(t *testing.T) {
	e := newEcho()
	h := NewAppointmentHandler(&stubAppointmentService{})

	req := jsonRequest(http.MethodPost, "/api/appointments",
		`{"patientId":"pat-1","doctorId":"doc-1","date":"2026-09-01","time":"14:30"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAppointmentHandler_ListByDoctor(t *testing.T) {
	e := newEcho()
	stub := &stubAppointmentService{
		byDoctor: func(_ context.Context, input ports.ListAppointmentsInput) ([]*domain.Appointment, error) {
			if input.PartyID != "doc-1" {
				t.Fatalf("unexpected party id: %s", input.PartyID)
			}
			return []*domain.Appointment{{ID: "appt-1", DoctorID: "doc-1"}}, nil
		},
	}
	h := NewAppointmentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/doctor/doc-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("doc-1")
	c.Set("principal", domain.Principal{ID: "doc-1", Role: domain.RoleDoctor})

	if err := h.ListByDoctor(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
