package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Otp struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Otp       string             `json:"otp" bson:"otp"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
