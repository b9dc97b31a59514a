package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point, longitude first.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

type GymCenter struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	GymID   string             `json:"gymId" bson:"gymId"`
	Name    string             `json:"name" bson:"name"`
	Address string             `json:"address" bson:"address"`
	Phone   string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email   string             `json:"email,omitempty" bson:"email,omitempty"`
	Admin   primitive.ObjectID `json:"admin" bson:"admin"`

	Location  *GeoPoint `json:"location,omitempty" bson:"location,omitempty"`
	Amenities []string  `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Price     float64   `json:"price,omitempty" bson:"price,omitempty"`
	Rating    float64   `json:"rating,omitempty" bson:"rating,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
