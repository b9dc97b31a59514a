package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Water(router *gin.Engine) {
	water := router.Group("water", authorization.JWTAuth())
	{
		water.POST("/log", LogWaterIntake)
		water.GET("/fetch", FetchWaterIntake)
		water.DELETE("/delete/:entryId", DeleteWaterIntake)
	}
}

func LogWaterIntake(c *gin.Context) {
	var entry models.WaterIntake
	if err := c.BindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	logged, err := services.LogWaterIntake(c, entry)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(logged))
}

func FetchWaterIntake(c *gin.Context) {
	summary, err := services.FetchWaterIntake(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(summary))
}

func DeleteWaterIntake(c *gin.Context) {
	if err := services.DeleteWaterIntake(c, c.Param("entryId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Entry deleted"))
}
