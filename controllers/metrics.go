package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Metrics(router *gin.Engine) {
	metrics := router.Group("metrics", authorization.JWTAuth(),
		authorization.RequireRole(string(models.RoleAdmin), string(models.RoleSuperAdmin)))
	{
		metrics.GET("/platform", FetchPlatformMetrics)
	}
}

func FetchPlatformMetrics(c *gin.Context) {
	metrics, err := services.FetchPlatformMetrics(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(metrics))
}
