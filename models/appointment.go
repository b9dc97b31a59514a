package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
)

func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusRescheduled, StatusCompleted, StatusCancelled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// Terminal reports whether no further status change is permitted.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

type Appointment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	ConsultantID primitive.ObjectID `json:"consultantId" bson:"consultantId"`

	Title string `json:"title,omitempty" bson:"title,omitempty"`
	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`

	StartAt time.Time `json:"startAt" bson:"startAt"`
	EndAt   time.Time `json:"endAt" bson:"endAt"`

	Status AppointmentStatus `json:"status" bson:"status"`

	Mode     string   `json:"mode,omitempty" bson:"mode,omitempty"`
	Location string   `json:"location,omitempty" bson:"location,omitempty"`
	Price    *float64 `json:"price,omitempty" bson:"price,omitempty"`

	LastModifiedBy primitive.ObjectID     `json:"lastModifiedBy,omitempty" bson:"lastModifiedBy,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// AppointmentView is an Appointment with its user and consultant references
// resolved for display.
type AppointmentView struct {
	Appointment `bson:",inline"`
	User        *UserRef       `json:"user,omitempty" bson:"user,omitempty"`
	Consultant  *ConsultantRef `json:"consultant,omitempty" bson:"consultant,omitempty"`
}
