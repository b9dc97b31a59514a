package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HealthMetrics struct {
	Weight      string `json:"weight,omitempty" bson:"weight,omitempty"`
	Height      string `json:"height,omitempty" bson:"height,omitempty"`
	Age         string `json:"age,omitempty" bson:"age,omitempty"`
	Gender      string `json:"gender,omitempty" bson:"gender,omitempty"`
	FitnessGoal string `json:"fitnessGoal,omitempty" bson:"fitnessGoal,omitempty"`
}

type WorkPreferences struct {
	Occupation      string   `json:"occupation,omitempty" bson:"occupation,omitempty"`
	WorkoutTiming   string   `json:"workoutTiming,omitempty" bson:"workoutTiming,omitempty"`
	AvailableDays   []string `json:"availableDays,omitempty" bson:"availableDays,omitempty"`
	WorkStressLevel string   `json:"workStressLevel,omitempty" bson:"workStressLevel,omitempty"`
	SedentaryHours  string   `json:"sedentaryHours,omitempty" bson:"sedentaryHours,omitempty"`
	WorkoutLocation string   `json:"workoutLocation,omitempty" bson:"workoutLocation,omitempty"`
}

type NotificationPrefs struct {
	WorkoutReminders     bool `json:"workoutReminders" bson:"workoutReminders"`
	NewContent           bool `json:"newContent" bson:"newContent"`
	PromotionOffers      bool `json:"promotionOffers" bson:"promotionOffers"`
	AppointmentReminders bool `json:"appointmentReminders" bson:"appointmentReminders"`
}

type SecurityPrefs struct {
	BiometricLogin bool `json:"biometricLogin" bson:"biometricLogin"`
	TwoFactorAuth  bool `json:"twoFactorAuth" bson:"twoFactorAuth"`
}

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" bson:"pincode,omitempty"`
}

type Profile struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID primitive.ObjectID `json:"userId" bson:"userId"`

	FullName     string `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Bio          string `json:"bio,omitempty" bson:"bio,omitempty"`
	ProfileImage string `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`

	HealthMetrics   HealthMetrics     `json:"healthMetrics" bson:"healthMetrics"`
	WorkPreferences WorkPreferences   `json:"workPreferences" bson:"workPreferences"`
	Notifications   NotificationPrefs `json:"notifications" bson:"notifications"`
	Security        SecurityPrefs     `json:"security" bson:"security"`
	Address         Address           `json:"address" bson:"address"`

	LastLogin        *time.Time `json:"lastlogin,omitempty" bson:"lastlogin,omitempty"`
	LoginCount       int        `json:"logincount" bson:"logincount"`
	MembershipStatus string     `json:"membershipStatus" bson:"membershipStatus"`
	BadgeCount       int        `json:"badgeCount" bson:"badgeCount"`
	Achievements     []string   `json:"achievements,omitempty" bson:"achievements,omitempty"`
	ReferralCode     string     `json:"referralCode,omitempty" bson:"referralCode,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
