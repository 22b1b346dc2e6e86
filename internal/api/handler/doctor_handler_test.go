package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

type stubDoctorService struct {
	listFn func(ctx context.Context) ([]*domain.Doctor, error)
	getFn  func(ctx context.Context, userID string) (*domain.Doctor, error)
}

func (s *stubDoctorService) ListDoctors(ctx context.Context) ([]*domain.Doctor, error) {
	return s.listFn(ctx)
}

func (s *stubDoctorService) GetDoctor(ctx context.Context, userID string) (*domain.Doctor, error) {
	return s.getFn(ctx, userID)
}

func TestDoctorHandler_List(t *testing.T) {
	e := newEcho()
	stub := &stubDoctorService{
		listFn: func(_ context.Context) ([]*domain.Doctor, error) {
			return []*domain.Doctor{
				{UserID: "doc-1", FullName: "Dr. Who", Specialty: "Dermatology", City: "Bucharest", Verified: true},
			}, nil
		},
	}
	h := NewDoctorHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["userId"] != "doc-1" || resp[0]["specialty"] != "Dermatology" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestDoctorHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubDoctorService{
		getFn: func(_ context.Context, _ string) (*domain.Doctor, error) {
			return nil, domain.ErrDoctorNotFound
		},
	}
	h := NewDoctorHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/doctor/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrDoctorNotFound {
		t.Fatalf("expected domain error to propagate, got %v", err)
	}
}
