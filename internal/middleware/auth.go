package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/response"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin API with the configured API key
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Admin-Key")

		// If not passed via header, try to get from query parameters
		if apiKey == "" {
			apiKey = c.Query("admin_key")
		}

		configured := config.AppConfig.AdminAPIKey
		if configured == "" {
			c.JSON(http.StatusServiceUnavailable, response.Error(http.StatusServiceUnavailable, "Admin API is not configured"))
			c.Abort()
			return
		}

		if apiKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(configured)) != 1 {
			c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid admin API key"))
			c.Abort()
			return
		}

		c.Set("request_time", time.Now())
		c.Next()
	}
}
