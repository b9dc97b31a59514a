package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Gym(router *gin.Engine) {
	gym := router.Group("gym")
	{
		gym.GET("/fetchAll", FetchAllGyms)
		gym.GET("/nearby", FetchNearbyGyms)
		gym.GET("/fetch/:gymId", FetchGymById)
		gym.POST("/create", authorization.JWTAuth(),
			authorization.RequireRole(string(models.RoleSuperAdmin)), CreateGym)
		gym.PATCH("/update/:gymId", authorization.JWTAuth(), UpdateGym)
		gym.DELETE("/delete/:gymId", authorization.JWTAuth(),
			authorization.RequireRole(string(models.RoleSuperAdmin)), DeleteGym)
	}
}

/*
* Bind the gym and admin fields
* And pass to the service, which provisions both
 */
func CreateGym(c *gin.Context) {
	var in services.CreateGymInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	gym, admin, err := services.CreateGym(c, in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(gin.H{"gym": gym, "admin": admin}))
}

func FetchAllGyms(c *gin.Context) {
	gyms, err := services.FetchAllGyms(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gyms))
}

func FetchNearbyGyms(c *gin.Context) {
	gyms, err := services.FetchNearbyGyms(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gyms))
}

func FetchGymById(c *gin.Context) {
	gym, err := services.FetchGymByID(c, c.Param("gymId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gym))
}

func UpdateGym(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateGym(c, c.Param("gymId"), updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func DeleteGym(c *gin.Context) {
	if err := services.DeleteGym(c, c.Param("gymId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Gym deleted"))
}
