package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by canonical email
	doctors map[string]*domain.Doctor
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:   make(map[string]*domain.User),
		doctors: make(map[string]*domain.Doctor),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User, doctor *domain.Doctor) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[created.Email] = created
	if doctor != nil {
		profile := *doctor
		profile.UserID = created.ID
		r.doctors[created.ID] = &profile
	}
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) Allowed(_ context.Context, _ string) (bool, error) {
	return !l.blocked, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

type stubAuditSink struct {
	events []ports.AuthEventInput
}

func (s *stubAuditSink) Enqueue(event ports.AuthEventInput) {
	s.events = append(s.events, event)
}

func newTestAuthService() (*AuthService, *stubUserRepo, *stubLimiter, *stubAuditSink) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	audit := &stubAuditSink{}
	svc := NewAuthService(repo, NewBcryptHasher(), NewTokenService("secret", time.Hour), limiter, audit, zerolog.Nop())
	return svc, repo, limiter, audit
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _, audit := newTestAuthService()

	result, err := svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", domain.RolePatient)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.Role != domain.RolePatient {
		t.Fatalf("unexpected role: %s", result.User.Role)
	}
	if result.User.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}
	if len(repo.doctors) != 0 {
		t.Fatalf("patient registration should not create a doctor profile")
	}
	if len(audit.events) != 1 || audit.events[0].Action != ports.AuditRegister {
		t.Fatalf("expected one register audit event, got %+v", audit.events)
	}
}

func TestAuthService_Register_DoctorProfileCreated(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()

	result, err := svc.Register(context.Background(), "Dr. Who", "who@x.com", "secret123", domain.RoleDoctor)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	profile, ok := repo.doctors[result.User.ID]
	if !ok {
		t.Fatalf("doctor registration did not create a profile")
	}
	if profile.FullName != "Dr. Who" {
		t.Fatalf("profile full name not denormalized: %q", profile.FullName)
	}
}

func TestAuthService_Register_CanonicalizesEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	result, err := svc.Register(context.Background(), "Jane Doe", "  Foo@Bar.com ", "secret123", domain.RolePatient)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.User.Email != "foo@bar.com" {
		t.Fatalf("email not canonicalized: %q", result.User.Email)
	}

	// login with a differently-cased spelling reaches the same account
	login, err := svc.Login(context.Background(), "FOO@bar.COM", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Fatalf("login resolved a different account")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, repo, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", domain.RolePatient); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Jane Dupe", "Jane@X.com", "other456", domain.RolePatient); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user row, got %d", len(repo.users))
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", "WIZARD"); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, limiter, _ := newTestAuthService()

	registered, err := svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", domain.RolePatient)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "jane@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.User.ID != registered.User.ID {
		t.Fatalf("login returned a different user")
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset after success, got %d", limiter.resets)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, limiter, audit := newTestAuthService()

	_, _ = svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", domain.RolePatient)
	audit.events = nil

	if _, err := svc.Login(context.Background(), "jane@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures)
	}
	if len(audit.events) != 1 || audit.events[0].Action != ports.AuditLoginFailed {
		t.Fatalf("expected login_failed audit event, got %+v", audit.events)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, err := svc.Login(context.Background(), "ghost@x.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	svc, _, limiter, _ := newTestAuthService()
	_, _ = svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", domain.RolePatient)

	limiter.blocked = true
	if _, err := svc.Login(context.Background(), "jane@x.com", "secret123"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

type stubRoleProfile struct {
	role   domain.Role
	loaded string
}

func (p *stubRoleProfile) Role() domain.Role { return p.role }

func (p *stubRoleProfile) Load(_ context.Context, userID string) (any, error) {
	p.loaded = userID
	return map[string]string{"specialty": "Dermatology"}, nil
}

func TestAuthService_Me_RoleProfile(t *testing.T) {
	svc, _, _, _ := newTestAuthService()
	provider := &stubRoleProfile{role: domain.RoleDoctor}
	svc.RegisterRoleProfile(provider)

	doctor, err := svc.Register(context.Background(), "Dr. Who", "who@x.com", "secret123", domain.RoleDoctor)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	patient, err := svc.Register(context.Background(), "Jane Doe", "jane@x.com", "secret123", domain.RolePatient)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	me, err := svc.Me(context.Background(), doctor.User.ID)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if me.Profile == nil {
		t.Fatalf("expected doctor profile enrichment")
	}
	if provider.loaded != doctor.User.ID {
		t.Fatalf("provider loaded wrong user: %s", provider.loaded)
	}

	me, err = svc.Me(context.Background(), patient.User.ID)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if me.Profile != nil {
		t.Fatalf("patient should have no profile enrichment")
	}
}
