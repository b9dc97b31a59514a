package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Wellness(router *gin.Engine) {
	wellness := router.Group("wellness", authorization.JWTAuth())
	{
		wellness.POST("/answers", SaveWellnessAnswers)
		wellness.GET("/answers", FetchWellnessAnswers)
		wellness.GET("/answers/fetchAll",
			authorization.RequireRole(string(models.RoleAdmin), string(models.RoleSuperAdmin)), FetchAllWellnessAnswers)
		wellness.DELETE("/answers", DeleteWellnessAnswers)
	}
}

func SaveWellnessAnswers(c *gin.Context) {
	var body struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	saved, err := services.SaveWellnessAnswers(c, body.Answers)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(saved))
}

func FetchWellnessAnswers(c *gin.Context) {
	answers, err := services.FetchWellnessAnswers(c, c.Query("userId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(answers))
}

func FetchAllWellnessAnswers(c *gin.Context) {
	page, err := services.FetchAllWellnessAnswers(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(page))
}

func DeleteWellnessAnswers(c *gin.Context) {
	if err := services.DeleteWellnessAnswers(c, c.Query("userId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Answers deleted"))
}
