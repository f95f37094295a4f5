package api

import (
	"net/http"
	"strconv"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/gin-gonic/gin"
)

// AdminStatsHandler returns the dashboard rollups
// GET /api/admin/stats
func AdminStatsHandler(c *gin.Context) {
	transactionCounts, err := database.CountTransactionsByStatus()
	if err != nil {
		logging.Errorf("Failed to count transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load stats",
		})
		return
	}

	revenue, err := database.SumApprovedRevenue()
	if err != nil {
		logging.Errorf("Failed to sum revenue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load stats",
		})
		return
	}

	activeSubscriptions, err := database.CountActiveSubscriptions()
	if err != nil {
		logging.Errorf("Failed to count subscriptions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load stats",
		})
		return
	}

	pendingPayouts, err := database.SumPendingPayouts()
	if err != nil {
		logging.Errorf("Failed to sum payouts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load stats",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"revenue":              revenue,
			"transactions":         transactionCounts,
			"active_subscriptions": activeSubscriptions,
			"pending_payouts":      pendingPayouts,
		},
	})
}

// AdminAffiliatesHandler lists all affiliates with their totals
// GET /api/admin/affiliates
func AdminAffiliatesHandler(c *gin.Context) {
	affiliates, err := database.ListAffiliates()
	if err != nil {
		logging.Errorf("Failed to list affiliates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load affiliates",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    affiliates,
	})
}

// ToggleAffiliateRequest carries the desired activation state
type ToggleAffiliateRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// AdminToggleAffiliateHandler activates or deactivates an affiliate
// PUT /api/admin/affiliates/:code/toggle
func AdminToggleAffiliateHandler(c *gin.Context) {
	code := c.Param("code")

	var req ToggleAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	if err := database.SetAffiliateActive(code, *req.IsActive); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Affiliate not found",
		})
		return
	}

	logging.Infof("Affiliate %s active=%v", code, *req.IsActive)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Affiliate updated",
	})
}

// AdminUsageHandler rolls generator usage up per tool
// GET /api/admin/usage
func AdminUsageHandler(c *gin.Context) {
	rollup, err := database.GetToolUsageRollup()
	if err != nil {
		logging.Errorf("Failed to load usage rollup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load usage",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rollup,
	})
}

// AdminTransactionsHandler lists recent transactions
// GET /api/admin/transactions?limit=50
func AdminTransactionsHandler(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	transactions, err := database.ListRecentTransactions(limit)
	if err != nil {
		logging.Errorf("Failed to list transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load transactions",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transactions,
	})
}
