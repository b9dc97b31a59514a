package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PricingPackage struct {
	Title    string  `json:"title" bson:"title"`
	Duration string  `json:"duration" bson:"duration"`
	Price    float64 `json:"price" bson:"price"`
}

type Pricing struct {
	PerSession *float64         `json:"perSession,omitempty" bson:"perSession,omitempty"`
	PerDay     *float64         `json:"perDay,omitempty" bson:"perDay,omitempty"`
	PerWeek    *float64         `json:"perWeek,omitempty" bson:"perWeek,omitempty"`
	PerMonth   *float64         `json:"perMonth,omitempty" bson:"perMonth,omitempty"`
	Packages   []PricingPackage `json:"packages,omitempty" bson:"packages,omitempty"`
}

type WorkingHours struct {
	Start string `json:"start,omitempty" bson:"start,omitempty"`
	End   string `json:"end,omitempty" bson:"end,omitempty"`
}

type Availability struct {
	Status       string       `json:"status,omitempty" bson:"status,omitempty"`
	NextSlot     string       `json:"nextSlot,omitempty" bson:"nextSlot,omitempty"`
	WorkingDays  []string     `json:"workingDays,omitempty" bson:"workingDays,omitempty"`
	WorkingHours WorkingHours `json:"workingHours,omitempty" bson:"workingHours,omitempty"`
}

type Contact struct {
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Website  string `json:"website,omitempty" bson:"website,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
}

type Consultant struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	Name              string   `json:"name" bson:"name"`
	Specialty         string   `json:"specialty" bson:"specialty"`
	Description       string   `json:"description,omitempty" bson:"description,omitempty"`
	YearsOfExperience int      `json:"yearsOfExperience" bson:"yearsOfExperience"`
	Certifications    []string `json:"certifications,omitempty" bson:"certifications,omitempty"`
	Badges            []string `json:"badges,omitempty" bson:"badges,omitempty"`

	ModeOfTraining string       `json:"modeOfTraining" bson:"modeOfTraining"`
	Pricing        Pricing      `json:"pricing" bson:"pricing"`
	Availability   Availability `json:"availability" bson:"availability"`
	Contact        Contact      `json:"contact" bson:"contact"`

	Rating       float64 `json:"rating" bson:"rating"`
	ReviewsCount int     `json:"reviewsCount" bson:"reviewsCount"`
	Image        string  `json:"image,omitempty" bson:"image,omitempty"`
	IsVerified   bool    `json:"isVerified" bson:"isVerified"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ConsultantRef is the display projection embedded in responses that
// resolve a consultant reference.
type ConsultantRef struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Specialty string             `json:"specialty" bson:"specialty"`
	Contact   Contact            `json:"contact,omitempty" bson:"contact,omitempty"`
}
