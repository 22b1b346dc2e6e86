package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorconnect/booking-system/internal/core/ports"
)

const auditCollection = "auth_audit"

// MongoAuditRepository persists auth audit events. Writes happen off the
// request path (via the queue dispatcher), so a failure here is logged by
// the caller and never surfaces to the client.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	UserID    string `bson:"user_id,omitempty"`
	Email     string `bson:"email"`
	Action    string `bson:"action"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Record(ctx context.Context, event ports.AuthEventInput) error {
	doc := mongoAuthEvent{
		UserID:    event.UserID,
		Email:     event.Email,
		Action:    event.Action,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
