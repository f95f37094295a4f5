package api

import (
	"net/http"
	"strings"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/response"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/services"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/gin-gonic/gin"
)

// PaymentWebhookHandler receives the payment gateway's confirmation
// callback. The gateway retries on non-2xx responses, so everything the
// service manages to record is acknowledged with 200.
// POST /api/payments/webhook
func PaymentWebhookHandler(c *gin.Context) {
	var notification services.WebhookNotification

	// The gateway sends form-urlencoded in production and JSON from its
	// test console
	contentType := c.GetHeader("Content-Type")
	var err error
	if strings.HasPrefix(contentType, "application/json") {
		err = c.ShouldBindJSON(&notification)
	} else {
		err = c.ShouldBind(&notification)
	}
	if err != nil {
		logging.Errorf("Failed to parse webhook body: %v", err)
		response.JSON(c, http.StatusBadRequest, response.Response{
			Success: false,
			Message: "Invalid webhook payload",
		})
		return
	}

	// Required fields, checked before any state is touched
	if notification.RefPayco == "" {
		response.JSON(c, http.StatusBadRequest, response.Response{
			Success: false,
			Message: "x_ref_payco is required",
		})
		return
	}
	if notification.UserID == "" || notification.Plan == "" {
		response.JSON(c, http.StatusBadRequest, response.Response{
			Success: false,
			Message: "x_extra1 (userId) and x_extra2 (plan) are required",
		})
		return
	}

	result, err := paymentService.ProcessWebhook(&notification)
	if err != nil {
		logging.Errorf("Webhook processing failed - ref: %s, error: %v", notification.RefPayco, err)
		response.JSON(c, http.StatusInternalServerError, response.Response{
			Success: false,
			Message: "Failed to process notification",
		})
		return
	}

	response.JSON(c, http.StatusOK, response.Response{
		Success: true,
		Status:  result.Status,
		Message: result.Message,
	})
}
