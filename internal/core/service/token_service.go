package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

// TokenService mints and verifies HS256 session tokens. The secret is fixed
// at construction and never rotated at runtime; both operations are pure
// functions of their inputs and require no locks.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime. The session cookie MaxAge is
// derived from it so cookie and token expire together.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token carrying sub, email, role, iat and exp.
func (s *TokenService) Issue(userID, email string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies signature and expiry. Every failure mode collapses to
// domain.ErrTokenInvalid so parse details never leak to callers.
func (s *TokenService) Validate(token string) (*domain.Claims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	out := &domain.Claims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    domain.Role(claims.Role),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
