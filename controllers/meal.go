package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Meal(router *gin.Engine) {
	meal := router.Group("meal", authorization.JWTAuth())
	{
		meal.POST("/log", LogMeal)
		meal.POST("/bulk", BulkLogMeals)
		meal.GET("/fetchAll", FetchMeals)
		meal.GET("/fetch/:mealId", FetchMealById)
		meal.GET("/summary", FetchMealSummary)
		meal.PATCH("/update/:mealId", UpdateMeal)
		meal.DELETE("/delete/:mealId", DeleteMeal)
	}
}

func LogMeal(c *gin.Context) {
	var meal models.Meal
	if err := c.BindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	logged, err := services.LogMeal(c, meal)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(logged))
}

/*
* Bind the raw entries so alias field names from external trackers
* survive binding, then pass to the service
 */
func BulkLogMeals(c *gin.Context) {
	var body struct {
		Meals []map[string]interface{} `json:"meals"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	saved, failed, err := services.BulkLogMeals(c, body.Meals)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(gin.H{"saved": saved, "failed": failed}))
}

func FetchMeals(c *gin.Context) {
	meals, err := services.FetchMeals(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(meals))
}

func FetchMealSummary(c *gin.Context) {
	summary, err := services.FetchMealSummary(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(summary))
}

func FetchMealById(c *gin.Context) {
	meal, err := services.FetchMealByID(c, c.Param("mealId"))
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(meal))
}

func UpdateMeal(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.BindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	updated, err := services.UpdateMeal(c, c.Param("mealId"), updates)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(updated))
}

func DeleteMeal(c *gin.Context) {
	if err := services.DeleteMeal(c, c.Param("mealId")); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Meal deleted"))
}
