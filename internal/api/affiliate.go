package api

import (
	"net/http"
	"strings"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterAffiliateRequest represents an affiliate registration
type RegisterAffiliateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code"` // optional, generated when empty
}

// RegisterAffiliateHandler enrolls a new affiliate
// POST /api/affiliates
func RegisterAffiliateHandler(c *gin.Context) {
	var req RegisterAffiliateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		code = strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
	}

	affiliate := &models.Affiliate{
		Code:           code,
		Name:           req.Name,
		Email:          req.Email,
		IsActive:       true,
		CommissionRate: config.AppConfig.DefaultCommissionRate,
	}

	if err := database.CreateAffiliate(affiliate); err != nil {
		logging.Errorf("Failed to create affiliate: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create affiliate, the code may already be taken",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    affiliate,
	})
}

// AffiliateStatsHandler returns an affiliate's totals and referral history
// GET /api/affiliates/:code/stats
func AffiliateStatsHandler(c *gin.Context) {
	code := c.Param("code")

	affiliate, err := database.GetAffiliateByCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Affiliate not found",
		})
		return
	}

	referrals, err := database.GetReferralsByAffiliate(affiliate.ID)
	if err != nil {
		logging.Errorf("Failed to load referrals for %s: %v", code, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load referrals",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"code":            affiliate.Code,
			"is_active":       affiliate.IsActive,
			"commission_rate": affiliate.CommissionRate,
			"total_earned":    affiliate.TotalEarned,
			"pending_payout":  affiliate.PendingPayout,
			"referral_count":  len(referrals),
			"referrals":       referrals,
		},
	})
}

// TrackReferralRequest binds a referral code to a user
type TrackReferralRequest struct {
	UserID string `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// TrackReferralHandler records which affiliate referred a signup. The
// attribution must exist before the first payment webhook arrives for
// the commission to be credited.
// POST /api/affiliates/track
func TrackReferralHandler(c *gin.Context) {
	var req TrackReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request format: " + err.Error(),
		})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if _, err := database.GetActiveAffiliateByCode(code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Unknown or inactive affiliate code",
		})
		return
	}

	if err := database.TrackReferral(req.UserID, code); err != nil {
		logging.Errorf("Failed to track referral - user: %s, code: %s, error: %v", req.UserID, code, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to track referral",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Referral tracked",
	})
}
