package routes

import (
	"vitalfit/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	// each controller group applies its own auth guards, so public
	// discovery endpoints and private ones can live side by side
	controllers.Auth(r)
	controllers.Consultant(r)
	controllers.Gym(r)
	controllers.Event(r)
	controllers.Appointment(r)
	controllers.Meal(r)
	controllers.Workout(r)
	controllers.Water(r)
	controllers.Wellness(r)
	controllers.Profile(r)
	controllers.MenstrualCycle(r)
	controllers.Metrics(r)
}
