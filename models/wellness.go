package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WellnessAnswer struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId"`
	UserRole    Role               `json:"userRole" bson:"userRole"`
	Answers     map[string]string  `json:"answers" bson:"answers"`
	CompletedAt time.Time          `json:"completedAt" bson:"completedAt"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
