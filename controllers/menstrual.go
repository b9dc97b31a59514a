package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func MenstrualCycle(router *gin.Engine) {
	cycle := router.Group("cycle", authorization.JWTAuth())
	{
		cycle.POST("/enable", EnableCycleTracking)
		cycle.POST("/disable", DisableCycleTracking)
		cycle.POST("/period", LogPeriod)
		cycle.GET("/status", FetchCycleStatus)
		cycle.GET("/insights", FetchCycleInsights)
		cycle.PUT("/notifications", UpdateCycleNotifications)
	}
}

func EnableCycleTracking(c *gin.Context) {
	mc, err := services.EnableCycleTracking(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(mc))
}

func DisableCycleTracking(c *gin.Context) {
	if err := services.DisableCycleTracking(c); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Tracking disabled"))
}

/*
* Bind the period fields
* And pass to the service, which refreshes the predictions
 */
func LogPeriod(c *gin.Context) {
	var in services.LogPeriodInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	mc, err := services.LogPeriod(c, in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(mc))
}

func FetchCycleStatus(c *gin.Context) {
	status, err := services.FetchCycleStatus(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(status))
}

func FetchCycleInsights(c *gin.Context) {
	insights, err := services.FetchCycleInsights(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(insights))
}

func UpdateCycleNotifications(c *gin.Context) {
	var prefs models.CycleNotifications
	if err := c.BindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	mc, err := services.UpdateCycleNotifications(c, prefs)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(mc))
}
