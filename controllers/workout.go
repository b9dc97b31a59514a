package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Workout(router *gin.Engine) {
	workout := router.Group("workout", authorization.JWTAuth())
	{
		workout.POST("/log", LogWorkout)
		workout.GET("/fetchAll", FetchWorkouts)
		workout.GET("/today", FetchTodayWorkouts)
		workout.GET("/stats", FetchWorkoutStats)
		workout.PATCH("/update/:workoutId", UpdateWorkout)
		workout.DELETE("/delete/:workoutId", DeleteWorkout)
	}
}

func LogWorkout(c *gin.Context) {
	var workout models.Workout
	if err := c.BindJSON(&workout); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	logged, err := services.LogWorkout(c, workout)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(logged))
}

func FetchWorkouts(c *gin.Context) {
	workouts, err := services.FetchWorkouts(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(workouts))
}

func FetchTodayWorkouts(c *gin.Context) {
	workouts, stats, err := services.FetchTodayWorkouts(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"workouts": workouts, "stats": stats}))
}

func FetchWorkoutStats(c *gin.Context) {
	stats, err := services.FetchWorkoutStats(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(stats))
}

func UpdateWorkout(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateWorkout(c, c.Param("workoutId"), updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func DeleteWorkout(c *gin.Context) {
	if err := services.DeleteWorkout(c, c.Param("workoutId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Workout deleted"))
}
