package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Instructor  string             `json:"instructor,omitempty" bson:"instructor,omitempty"`
	Cost        float64            `json:"cost" bson:"cost"`
	Benefits    []string           `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Date        time.Time          `json:"date" bson:"date"`

	EventType  string `json:"eventType" bson:"eventType"`
	Location   string `json:"location,omitempty" bson:"location,omitempty"`
	OnlineLink string `json:"onlineLink,omitempty" bson:"onlineLink,omitempty"`

	GymCenter *primitive.ObjectID `json:"gymCenter,omitempty" bson:"gymCenter,omitempty"`
	CreatedBy primitive.ObjectID  `json:"createdBy" bson:"createdBy"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
