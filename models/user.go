package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                  string             `json:"name" bson:"name"`
	Age                   int                `json:"age,omitempty" bson:"age,omitempty"`
	Gender                string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Phone                 string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email                 string             `json:"email,omitempty" bson:"email,omitempty"`
	Password              string             `json:"-" bson:"password,omitempty"`
	Role                  Role               `json:"role" bson:"role"`
	Consent               bool               `json:"consent" bson:"consent"`
	PrivacyNoticeAccepted bool               `json:"privacyNoticeAccepted" bson:"privacyNoticeAccepted"`
	AadharNumber          string             `json:"aadharNumber,omitempty" bson:"aadharNumber,omitempty"`
	AbhaID                string             `json:"abhaId,omitempty" bson:"abhaId,omitempty"`
	EmailVerified         bool               `json:"emailVerified" bson:"emailVerified"`
	PhoneVerified         bool               `json:"phoneVerified" bson:"phoneVerified"`
	IsVerified            bool               `json:"isVerified" bson:"isVerified"`

	Otp         string     `json:"-" bson:"otp,omitempty"`
	OtpAttempts int        `json:"-" bson:"otpAttempts,omitempty"`
	OtpLastSent *time.Time `json:"-" bson:"otpLastSent,omitempty"`

	MenstrualCycle *MenstrualCycle `json:"menstrualCycle,omitempty" bson:"menstrualCycle,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// UserRef is the display projection embedded in responses that resolve a
// user reference.
type UserRef struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
}
