package database

import (
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"

	"gorm.io/gorm"
)

// CreateAffiliate creates a new affiliate
func CreateAffiliate(affiliate *models.Affiliate) error {
	return DB.Create(affiliate).Error
}

// GetAffiliateByCode looks an affiliate up by code
func GetAffiliateByCode(code string) (*models.Affiliate, error) {
	var affiliate models.Affiliate
	err := DB.Where("code = ?", code).First(&affiliate).Error
	if err != nil {
		return nil, err
	}
	return &affiliate, nil
}

// GetActiveAffiliateByCode looks an active affiliate up by code.
// Deactivated affiliates earn nothing, even for users they referred
// while active.
func GetActiveAffiliateByCode(code string) (*models.Affiliate, error) {
	var affiliate models.Affiliate
	err := DB.Where("code = ? AND is_active = ?", code, true).First(&affiliate).Error
	if err != nil {
		return nil, err
	}
	return &affiliate, nil
}

// CreateReferral appends a referral audit row. Returns
// gorm.ErrDuplicatedKey when the provider ref was already credited.
func CreateReferral(referral *models.Referral) error {
	return DB.Create(referral).Error
}

// AddCommission credits an affiliate's running totals with a single
// atomic statement. Concurrent approvals for the same affiliate cannot
// lose an update this way.
func AddCommission(affiliateID uint, commission float64) error {
	return DB.Model(&models.Affiliate{}).
		Where("id = ?", affiliateID).
		UpdateColumns(map[string]interface{}{
			"total_earned":   gorm.Expr("total_earned + ?", commission),
			"pending_payout": gorm.Expr("pending_payout + ?", commission),
		}).Error
}

// SetAffiliateActive toggles whether an affiliate can earn commissions
func SetAffiliateActive(code string, active bool) error {
	result := DB.Model(&models.Affiliate{}).
		Where("code = ?", code).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAffiliates returns all affiliates, most recent first
func ListAffiliates() ([]models.Affiliate, error) {
	var affiliates []models.Affiliate
	err := DB.Order("created_at DESC").Find(&affiliates).Error
	return affiliates, err
}

// GetReferralsByAffiliate returns the affiliate's referral history
func GetReferralsByAffiliate(affiliateID uint) ([]models.Referral, error) {
	var referrals []models.Referral
	err := DB.Where("affiliate_id = ?", affiliateID).
		Order("created_at DESC").
		Find(&referrals).Error
	return referrals, err
}

// RecordToolUsage stores one generator invocation
func RecordToolUsage(usage *models.ToolUsage) error {
	return DB.Create(usage).Error
}
