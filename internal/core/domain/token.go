package domain

import (
	"errors"
	"time"
)

var ErrTokenInvalid = errors.New("invalid token")
var ErrForbidden = errors.New("access forbidden")

// Claims are the facts embedded in a session token. They are only
// trustworthy when obtained from a successful TokenService.Validate call.
type Claims struct {
	Subject   string // user id
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated caller derived from validated claims.
// It is constructed per request and never cached across requests.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

// PrincipalFromClaims builds the request principal out of validated claims.
func PrincipalFromClaims(c *Claims) Principal {
	return Principal{ID: c.Subject, Email: c.Email, Role: c.Role}
}
