package controllers

import (
	"net/http"

	"vitalfit/config/authorization"
	"vitalfit/models"
	"vitalfit/services"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	auth := router.Group("auth")
	{
		auth.POST("/register", Register)
		auth.POST("/register-admin", authorization.JWTAuth(), authorization.RequireRole(string(models.RoleSuperAdmin)), RegisterAdmin)
		auth.POST("/login", Login)
		auth.POST("/send-otp", SendOtp)
		auth.POST("/confirm-otp", ConfirmOtp)
		auth.POST("/change-password", authorization.JWTAuth(), ChangePassword)
		auth.GET("/me", authorization.JWTAuth(), Me)
	}
}

/*
* Bind the registration fields
* And pass to the service
 */
func Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	resp, err := services.RegisterUser(c, in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(resp))
}

func RegisterAdmin(c *gin.Context) {
	var in services.RegisterInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	resp, err := services.RegisterAdmin(c, in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(resp))
}

/*
* Bind the login fields and pass to the service
 */
func Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	resp, err := services.LoginUser(c, in)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(resp))
}

func SendOtp(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	resp, err := services.SendOtp(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(resp))
}

func ConfirmOtp(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	verified, err := services.ConfirmOtp(c, data)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"verified": verified}))
}

func ChangePassword(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.ChangePassword(c, data); err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage("Password updated"))
}

/*
* Fetch the logged-in account, sensitive fields masked
 */
func Me(c *gin.Context) {
	account, err := services.FetchOwnAccount(c)
	if err != nil {
		c.JSON(util.StatusOf(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(account))
}
