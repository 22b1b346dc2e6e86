package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/doctorconnect/booking-system/internal/core/domain"
)

const doctorsCollection = "doctors"

type MongoDoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) *MongoDoctorRepository {
	return &MongoDoctorRepository{coll: db.Collection(doctorsCollection)}
}

type mongoDoctor struct {
	UserID        string  `bson:"user_id"`
	FullName      string  `bson:"full_name"`
	Specialty     string  `bson:"specialty"`
	Bio           string  `bson:"bio"`
	City          string  `bson:"city"`
	PriceMinCents int64   `bson:"price_min_cents"`
	PriceMaxCents int64   `bson:"price_max_cents"`
	Verified      bool    `bson:"verified"`
	RatingAvg     float64 `bson:"rating_avg"`
	RatingCount   int     `bson:"rating_count"`
}

func (r *MongoDoctorRepository) FindByUserID(ctx context.Context, userID string) (*domain.Doctor, error) {
	var md mongoDoctor
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return md.toDomain(), nil
}

func (r *MongoDoctorRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	doctors := make([]*domain.Doctor, 0)
	for cursor.Next(ctx) {
		var md mongoDoctor
		if err := cursor.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode doctor: %w", err)
		}
		doctors = append(doctors, md.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (md mongoDoctor) toDomain() *domain.Doctor {
	return &domain.Doctor{
		UserID:        md.UserID,
		FullName:      md.FullName,
		Specialty:     md.Specialty,
		Bio:           md.Bio,
		City:          md.City,
		PriceMinCents: md.PriceMinCents,
		PriceMaxCents: md.PriceMaxCents,
		Verified:      md.Verified,
		RatingAvg:     md.RatingAvg,
		RatingCount:   md.RatingCount,
	}
}
