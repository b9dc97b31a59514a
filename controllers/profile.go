package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Profile(router *gin.Engine) {
	profile := router.Group("profile", authorization.JWTAuth())
	{
		profile.GET("/fetch", FetchProfile)
		profile.PUT("/upsert", UpsertProfile)
	}
}

func FetchProfile(c *gin.Context) {
	profile, err := services.FetchProfile(c, c.Query("userId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(profile))
}

func UpsertProfile(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	profile, err := services.UpsertProfile(c, updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(profile))
}
