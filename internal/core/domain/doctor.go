package domain

import "errors"

var ErrDoctorNotFound = errors.New("doctor not found")

// Doctor is the public profile attached to a user with the DOCTOR role.
// FullName is denormalized from the user record at registration time so the
// directory listing does not need a join.
type Doctor struct {
	UserID        string  `json:"userId"`
	FullName      string  `json:"fullName"`
	Specialty     string  `json:"specialty"`
	Bio           string  `json:"bio"`
	City          string  `json:"city"`
	PriceMinCents int64   `json:"priceMinCents"`
	PriceMaxCents int64   `json:"priceMaxCents"`
	Verified      bool    `json:"verified"`
	RatingAvg     float64 `json:"ratingAvg"`
	RatingCount   int     `json:"ratingCount"`
}
