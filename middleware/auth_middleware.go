package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripnest/bookingbackend/config"
	"github.com/tripnest/bookingbackend/utils"
)

const UserIDKey = "userID"

// Auth reads the identity token from the http-only cookie and binds the
// resolved user id into the request context. It is a pure boundary
// check: no store lookup happens here, so a revoked-but-unexpired token
// stays valid until it expires naturally.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.AuthCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		userID, err := utils.ValidateToken(token, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the subject bound by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
