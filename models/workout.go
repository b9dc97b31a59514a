package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Workout struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	WorkoutType    string  `json:"workoutType" bson:"workoutType"`
	Duration       int     `json:"duration" bson:"duration"`
	CaloriesBurned float64 `json:"caloriesBurned" bson:"caloriesBurned"`
	Intensity      string  `json:"intensity" bson:"intensity"`
	Notes          string  `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func ValidWorkoutType(s string) bool {
	switch s {
	case "Cardio", "Strength", "Yoga", "HIIT":
		return true
	}
	return false
}

func ValidIntensity(s string) bool {
	switch s {
	case "low", "medium", "high":
		return true
	}
	return false
}
