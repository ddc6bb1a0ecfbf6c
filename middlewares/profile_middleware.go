package middlewares

import (
	"net/http"

	"github.com/ram2117/Nutri-Track/config"
	"github.com/ram2117/Nutri-Track/services"

	"github.com/gin-gonic/gin"
)

// RequireProfile guards the tracking surface: an authenticated user
// without a profile gets 403 with a profile_required code, the
// server-side half of the SPA's redirect to profile setup.
func RequireProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetUint("userID")

		has, err := services.NewProfileService(config.DB).HasProfile(uid)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !has {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "profile_required"})
			return
		}
		c.Next()
	}
}
