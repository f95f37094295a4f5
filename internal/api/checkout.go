package api

import (
	"errors"
	"net/http"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/services"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/gin-gonic/gin"
)

// CheckoutSessionRequest represents a checkout session request
type CheckoutSessionRequest struct {
	UserID    string `json:"userId" binding:"required"`
	Plan      string `json:"plan" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
}

// CreateCheckoutSession builds the checkout widget configuration for a
// plan purchase. Nothing is persisted at this stage.
// POST /api/checkout/session
func CreateCheckoutSession(c *gin.Context) {
	var req CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	checkoutData, err := checkoutService.BuildSession(req.UserID, req.Plan, req.UserEmail, req.UserName)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlan) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid plan: " + req.Plan,
			})
			return
		}
		logging.Errorf("Failed to build checkout session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create checkout session",
		})
		return
	}

	logging.Infof("Checkout session created - user: %s, plan: %s, invoice: %s",
		req.UserID, req.Plan, checkoutData.Invoice)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"checkoutData": checkoutData,
		"invoice":      checkoutData.Invoice,
	})
}
