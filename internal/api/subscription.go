package api

import (
	"net/http"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"

	"github.com/gin-gonic/gin"
)

// SubscriptionStatusHandler returns the user's subscription state for
// the UI
// GET /api/subscriptions/:userId
func SubscriptionStatusHandler(c *gin.Context) {
	userID := c.Param("userId")

	subscription, err := database.GetSubscriptionByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No subscription for this user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"user_id":     subscription.UserID,
			"plan":        subscription.Plan,
			"is_active":   subscription.IsActive,
			"started_at":  subscription.StartedAt,
			"expires_at":  subscription.ExpiresAt,
			"referred_by": subscription.ReferredBy,
			"current":     subscription.IsCurrent(),
		},
	})
}
