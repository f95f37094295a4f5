package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type checkoutResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	Invoice      string                `json:"invoice"`
	CheckoutData services.CheckoutData `json:"checkoutData"`
}

func TestCheckoutSessionValidPlan(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/api/checkout/session", gin.H{
		"userId":    "user-1",
		"plan":      "pro",
		"userEmail": "user@example.com",
		"userName":  "Test User",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Invoice)

	data := resp.CheckoutData
	require.Equal(t, "pk_test_123", data.PublicKey)
	require.Equal(t, "19.00", data.Amount)
	require.Equal(t, "usd", data.Currency)
	require.Equal(t, "user-1", data.Extra1)
	require.Equal(t, "pro", data.Extra2)
	require.Equal(t, resp.Invoice, data.Extra3)
	require.Equal(t, resp.Invoice, data.Invoice)
	require.Equal(t, "user@example.com", data.Email)
	require.Equal(t, "Test User", data.NameClient)
	require.Equal(t, "https://example.com/api/payments/webhook", data.Confirmation)
	require.True(t, data.Test)
}

func TestCheckoutSessionUnknownPlan(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/api/checkout/session", gin.H{
		"userId":    "user-1",
		"plan":      "enterprise",
		"userEmail": "user@example.com",
		"userName":  "Test User",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Contains(t, resp.Message, "enterprise")

	// Nothing persisted for a failed session
	require.EqualValues(t, 0, countRows(t, &models.Transaction{}))
	require.EqualValues(t, 0, countRows(t, &models.Subscription{}))
}

func TestCheckoutSessionMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/api/checkout/session", gin.H{"plan": "pro"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutSessionLeavesNoState(t *testing.T) {
	r := setupRouter(t)

	w := httpDo(r, "POST", "/api/checkout/session", gin.H{
		"userId":    "user-1",
		"plan":      "gold",
		"userEmail": "user@example.com",
		"userName":  "Test User",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Abandoned checkouts leave no trace until the webhook fires
	require.EqualValues(t, 0, countRows(t, &models.Transaction{}))
}

func TestCheckoutInvoicesAreUnique(t *testing.T) {
	r := setupRouter(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		w := httpDo(r, "POST", "/api/checkout/session", gin.H{
			"userId":    "user-1",
			"plan":      "pro",
			"userEmail": "user@example.com",
			"userName":  "Test User",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp checkoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.False(t, seen[resp.Invoice], "invoice %s repeated", resp.Invoice)
		seen[resp.Invoice] = true
	}
}

func TestCheckoutSessionCustomPriceTable(t *testing.T) {
	r := setupRouter(t)
	config.AppConfig.Plans = map[string]config.Plan{
		"starter": {Name: "Starter", Amount: 9.5, Currency: "USD"},
	}

	w := httpDo(r, "POST", "/api/checkout/session", gin.H{
		"userId":    "user-1",
		"plan":      "starter",
		"userEmail": "user@example.com",
		"userName":  "Test User",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp checkoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "9.50", resp.CheckoutData.Amount)

	// The default plans are gone along with the override
	w = httpDo(r, "POST", "/api/checkout/session", gin.H{
		"userId":    "user-1",
		"plan":      "pro",
		"userEmail": "user@example.com",
		"userName":  "Test User",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
