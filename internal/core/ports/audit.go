package ports

import (
	"context"
	"time"
)

// Auth audit actions.
const (
	AuditLogin       = "login"
	AuditLoginFailed = "login_failed"
	AuditRegister    = "register"
)

// AuthEventInput is a single auth audit record in flight.
type AuthEventInput struct {
	UserID    string
	Email     string
	Action    string
	Timestamp time.Time
}

// AuditRecorder persists auth audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event AuthEventInput) error
}

// AuditSink accepts audit events for asynchronous recording. Enqueue must
// never block the request path beyond channel capacity and must never fail
// the calling operation.
type AuditSink interface {
	Enqueue(event AuthEventInput)
}

// LoginLimiter gates repeated failed logins per canonical email.
type LoginLimiter interface {
	// Allowed reports whether another attempt may proceed.
	Allowed(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt inside the current window.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
