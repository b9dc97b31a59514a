package util

// Collection names.
const (
	UserCollection        = "USER"
	OtpCollection         = "OTP"
	ProfileCollection     = "PROFILE"
	ConsultantCollection  = "CONSULTANT"
	GymCollection         = "GYM_CENTER"
	AppointmentCollection = "APPOINTMENT"
	EventCollection       = "EVENT"
	MealCollection        = "MEAL"
	WorkoutCollection     = "WORKOUT"
	WaterCollection       = "WATER_INTAKE"
	WellnessCollection    = "WELLNESS_ANSWER"
)

// Cache key prefixes.
const (
	AppointmentKey = "APPOINTMENT:"
	ConsultantKey  = "CONSULTANT:"
	GymKey         = "GYM:"
	ProfileKey     = "PROFILE:"
)

// Shared error messages.
const (
	CONSULTANT_AND_STARTAT_REQUIRED = "consultant and startAt are required"
	CONSULTANT_NOT_FOUND            = "Consultant not found"
	APPOINTMENT_NOT_FOUND           = "Appointment not found"
	INVALID_STARTAT                 = "Invalid startAt"
	INVALID_ENDAT                   = "Invalid endAt"
	ENDAT_BEFORE_STARTAT            = "endAt must be after startAt"
	DUPLICATE_BOOKING               = "You already have a booking for this timeslot"
	OVERLAP_OWN_BOOKING             = "You already have an overlapping appointment at this time"
	SLOT_ALREADY_BOOKED             = "Selected timeslot is already booked"
	FORBIDDEN                       = "Forbidden"
	CANNOT_CANCEL_COMPLETED         = "Cannot cancel a completed appointment"
	ALREADY_CANCELLED               = "Appointment is already cancelled"
	APPOINTMENT_DELETED             = "Appointment deleted"

	USER_NOT_FOUND       = "User not found"
	USER_ALREADY_EXISTS  = "User already exists"
	INVALID_CREDENTIALS  = "Invalid credentials"
	GYM_NOT_FOUND        = "Gym not found"
	EVENT_NOT_FOUND      = "Event not found"
	MEAL_NOT_FOUND       = "Meal not found"
	WORKOUT_NOT_FOUND    = "Workout not found"
	ENTRY_NOT_FOUND      = "Entry not found"
	PROFILE_NOT_FOUND    = "Profile not found"
	WELLNESS_NOT_FOUND   = "Wellness answers not found for this user"
	TRACKING_NOT_ENABLED = "Menstrual cycle tracking is not enabled"
	TRACKING_FEMALE_ONLY = "Menstrual cycle tracking is only available for female users"
)
