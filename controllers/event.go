package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Event(router *gin.Engine) {
	event := router.Group("event")
	{
		event.GET("/fetchAll", FetchAllEvents)
		event.GET("/fetch/:eventId", FetchEventById)
		event.POST("/create", authorization.JWTAuth(),
			authorization.RequireRole(string(models.RoleAdmin), string(models.RoleSuperAdmin)), CreateEvent)
		event.PATCH("/update/:eventId", authorization.JWTAuth(),
			authorization.RequireRole(string(models.RoleAdmin), string(models.RoleSuperAdmin)), UpdateEvent)
		event.DELETE("/delete/:eventId", authorization.JWTAuth(),
			authorization.RequireRole(string(models.RoleAdmin), string(models.RoleSuperAdmin)), DeleteEvent)
	}
}

func CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.BindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateEvent(c, event)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(created))
}

func FetchAllEvents(c *gin.Context) {
	events, err := services.FetchAllEvents(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(events))
}

func FetchEventById(c *gin.Context) {
	event, err := services.FetchEventByID(c, c.Param("eventId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(event))
}

func UpdateEvent(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateEvent(c, c.Param("eventId"), updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func DeleteEvent(c *gin.Context) {
	if err := services.DeleteEvent(c, c.Param("eventId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Event deleted"))
}
