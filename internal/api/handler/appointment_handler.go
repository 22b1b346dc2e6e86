package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctorconnect/booking-system/internal/api/metrics"
	"github.com/doctorconnect/booking-system/internal/api/middleware"
	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for appointment booking and
// per-party listings.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type createAppointmentRequest struct {
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId"  validate:"required"`
	Date      string `json:"date"      validate:"required,datetime=2006-01-02"`
	Time      string `json:"time"      validate:"required,datetime=15:04"`
	Status    string `json:"status"    validate:"omitempty,oneof=Pending Confirmed Cancelled Completed"`
}

// Create books an appointment for the authenticated patient.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.service.Create(c.Request().Context(), ports.CreateAppointmentInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    domain.AppointmentStatus(req.Status),
		Principal: principal,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.WithLabelValues(string(appointment.Status)).Inc()
	return c.JSON(http.StatusCreated, appointment)
}

// ListByDoctor returns the appointments booked with one doctor. Doctors see
// their own list only; admins see any.
//
// @Summary      List a doctor's appointments
// @Tags         appointments
// @Produce      json
// @Param        id   path      string  true  "Doctor user id"
// @Success      200  {array}   domain.Appointment
// @Failure      403  {object}  errorResponse
// @Router       /api/appointments/doctor/{id} [get]
func (h *AppointmentHandler) ListByDoctor(c echo.Context) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	appointments, err := h.service.ListByDoctor(c.Request().Context(), ports.ListAppointmentsInput{
		PartyID:   c.Param("id"),
		Principal: principal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}

// ListByPatient returns the appointments booked by one patient. Patients see
// their own list only; admins see any.
//
// @Summary      List a patient's appointments
// @Tags         appointments
// @Produce      json
// @Param        id   path      string  true  "Patient user id"
// @Success      200  {array}   domain.Appointment
// @Failure      403  {object}  errorResponse
// @Router       /api/appointments/patient/{id} [get]
func (h *AppointmentHandler) ListByPatient(c echo.Context) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	appointments, err := h.service.ListByPatient(c.Request().Context(), ports.ListAppointmentsInput{
		PartyID:   c.Param("id"),
		Principal: principal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointments)
}
