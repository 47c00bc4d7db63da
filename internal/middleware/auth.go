package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/service"
)

const userKey = "currentUser"

// Auth resolves the bearer token to a full user record so downstream
// handlers can check ownership and the admin flag without another lookup.
func Auth(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		user, err := authSvc.Authenticate(c.Request.Context(), header[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentUser(c).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized"})
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) model.User {
	v, _ := c.Get(userKey)
	user, _ := v.(model.User)
	return user
}
