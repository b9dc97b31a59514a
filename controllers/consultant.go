package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Consultant(router *gin.Engine) {
	consultant := router.Group("consultant")
	{
		consultant.GET("/fetchAll", FetchAllConsultants)
		consultant.GET("/fetch/:consultantId", FetchConsultantById)
		consultant.POST("/create", authorization.JWTAuth(), CreateConsultant)
		consultant.PATCH("/update/:consultantId", authorization.JWTAuth(), UpdateConsultant)
		consultant.DELETE("/delete/:consultantId", authorization.JWTAuth(),
			authorization.RequireRole(string(models.RoleAdmin), string(models.RoleSuperAdmin)), DeleteConsultant)
	}
}

func CreateConsultant(c *gin.Context) {
	var consultant models.Consultant
	if err := c.BindJSON(&consultant); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateConsultant(c, consultant)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(created))
}

func FetchAllConsultants(c *gin.Context) {
	consultants, err := services.FetchAllConsultants(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(consultants))
}

func FetchConsultantById(c *gin.Context) {
	consultant, err := services.FetchConsultantByID(c, c.Param("consultantId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(consultant))
}

func UpdateConsultant(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateConsultant(c, c.Param("consultantId"), updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func DeleteConsultant(c *gin.Context) {
	if err := services.DeleteConsultant(c, c.Param("consultantId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Consultant deleted"))
}
