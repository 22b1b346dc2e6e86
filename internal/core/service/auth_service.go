package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/doctorconnect/booking-system/internal/core/domain"
	"github.com/doctorconnect/booking-system/internal/core/ports"
)

// AuthService implements login, registration, and the current-user view.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	limiter  ports.LoginLimiter
	audit    ports.AuditSink
	profiles map[domain.Role]ports.RoleProfile
	logger   zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	limiter ports.LoginLimiter,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		limiter:  limiter,
		audit:    audit,
		profiles: make(map[domain.Role]ports.RoleProfile),
		logger:   logger,
	}
}

// RegisterRoleProfile plugs in the per-role enrichment used by Me. One
// provider per role; the last registration for a role wins.
func (s *AuthService) RegisterRoleProfile(p ports.RoleProfile) {
	s.profiles[p.Role()] = p
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	email = domain.CanonicalEmail(email)

	if s.limiter != nil {
		allowed, err := s.limiter.Allowed(ctx, email)
		if err != nil {
			// Limiter outage must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, email); err != nil {
				s.logger.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		s.recordAudit(user.ID, email, ports.AuditLoginFailed)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}

	s.recordAudit(user.ID, email, ports.AuditLogin)
	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Register(ctx context.Context, fullName, email, password string, role domain.Role) (*ports.AuthResult, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	email = domain.CanonicalEmail(email)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	// Doctors get an empty profile committed in the same transaction as the
	// user record; the directory shows them as unverified until curated.
	var doctor *domain.Doctor
	if role == domain.RoleDoctor {
		doctor = &domain.Doctor{FullName: fullName}
	}

	created, err := s.repo.Create(ctx, user, doctor)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Email, created.Role)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("failed to issue token")
		return nil, err
	}

	s.recordAudit(created.ID, email, ports.AuditRegister)
	s.logger.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user registered")

	return &ports.AuthResult{Token: token, User: created}, nil
}

// Me resolves the account behind a validated principal, enriched with the
// role-specific profile when a provider is registered for the role.
func (s *AuthService) Me(ctx context.Context, userID string) (*ports.MeResult, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &ports.MeResult{User: user}
	if provider, ok := s.profiles[user.Role]; ok {
		profile, err := provider.Load(ctx, user.ID)
		if err != nil {
			// The account view still works without the enrichment.
			s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("role profile load failed")
		} else {
			result.Profile = profile
		}
	}
	return result, nil
}

func (s *AuthService) recordAudit(userID, email, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuthEventInput{
		UserID:    userID,
		Email:     email,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}
