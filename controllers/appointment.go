package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine) {
	appointment := router.Group("appointment", authorization.JWTAuth())
	{
		appointment.POST("/create", CreateAppointment)
		appointment.PATCH("/update/:appointmentId", UpdateAppointment)
		appointment.POST("/cancel/:appointmentId", CancelAppointment)
		appointment.GET("/fetch/:appointmentId", FetchAppointmentById)
		appointment.GET("/fetchAll", FetchAllAppointments)
		appointment.DELETE("/delete/:appointmentId", DeleteAppointment)
	}
}

/*
* Bind the booking fields
* And pass to the service
 */
func CreateAppointment(c *gin.Context) {
	var in services.CreateAppointmentInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	appt, err := services.CreateAppointment(c, in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(appt))
}

/*
* Get appointmentId from param
* Bind the partial update and pass to the service
 */
func UpdateAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	appt, err := services.UpdateAppointment(c, appointmentId, updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appt))
}

func CancelAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	appt, err := services.CancelAppointment(c, appointmentId)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appt))
}

func FetchAppointmentById(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	appt, err := services.FetchAppointmentByID(c, appointmentId)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appt))
}

func FetchAllAppointments(c *gin.Context) {
	appts, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appts))
}

func DeleteAppointment(c *gin.Context) {
	appointmentId := c.Param("appointmentId")
	if err := services.DeleteAppointment(c, appointmentId); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage(util.APPOINTMENT_DELETED))
}
