package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// DoctorHandler serves the public doctor directory.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// List returns every doctor profile. Filtering and sorting happen client-side.
//
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Success      200  {array}  domain.Doctor
// @Router       /api/doctor/all [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Get returns one doctor profile by user id.
//
// @Summary      Get a doctor
// @Tags         doctors
// @Produce      json
// @Param        id   path      string  true  "Doctor user id"
// @Success      200  {object}  domain.Doctor
// @Failure      404  {object}  errorResponse
// @Router       /api/doctor/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	doctor, err := h.service.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}
