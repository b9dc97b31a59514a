package authorization

import (
	"net/http"
	"strings"

	"vitalfit/config/jwt"
	"vitalfit/util"

	"github.com/gin-gonic/gin"
)

/*
* Pull the bearer token, verify it and load the actor into the context
* Downstream handlers read "userId" and "role"
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.Unauthorized("Not authorized, no token")))
			return
		}
		claims, err := jwt.ParseJWT(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.Unauthorized("Not authorized, token failed")))
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := c.GetString("role")
		for _, r := range roles {
			if actorRole == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.Forbidden(util.FORBIDDEN)))
	}
}
