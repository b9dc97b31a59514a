package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WaterIntake struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	// Amount in millilitres.
	Amount float64   `json:"amount" bson:"amount"`
	Time   time.Time `json:"time" bson:"time"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
