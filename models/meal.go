package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(s string) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type Meal struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	MealType string `json:"mealType" bson:"mealType"`
	FoodName string `json:"foodName" bson:"foodName"`

	Calories     float64 `json:"calories" bson:"calories"`
	Protein      float64 `json:"protein" bson:"protein"`
	Carbs        float64 `json:"carbs" bson:"carbs"`
	Fats         float64 `json:"fats" bson:"fats"`
	ServingSize  float64 `json:"servingSize" bson:"servingSize"`
	Fiber        float64 `json:"fiber" bson:"fiber"`
	Sugar        float64 `json:"sugar" bson:"sugar"`
	Sodium       float64 `json:"sodium" bson:"sodium"`
	Cholesterol  float64 `json:"cholesterol" bson:"cholesterol"`
	SaturatedFat float64 `json:"saturatedFat" bson:"saturatedFat"`
	Potassium    float64 `json:"potassium" bson:"potassium"`

	ImageID  string                 `json:"imageId,omitempty" bson:"imageId,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
