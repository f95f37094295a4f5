package services

import (
	"errors"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CommissionService credits affiliates for approved referred payments
type CommissionService struct {
	emails *EmailService
}

// NewCommissionService creates a commission service
func NewCommissionService(emails *EmailService) *CommissionService {
	return &CommissionService{emails: emails}
}

// ComputeCommission returns amount × rate rounded half-up to 2 decimals
func ComputeCommission(amount, rate float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(rate)).
		Round(2).
		InexactFloat64()
}

// ProcessApprovedPayment runs the commission flow for one approved
// transaction. Every step is a silent no-op when its precondition fails:
// an unreferred user, an unknown or deactivated affiliate, or a provider
// ref that was already credited. Nothing here ever fails the webhook ack.
func (s *CommissionService) ProcessApprovedPayment(txn *models.Transaction) {
	subscription, err := database.GetSubscriptionByUserID(txn.UserID)
	if err != nil || subscription.ReferredBy == "" {
		return
	}

	affiliate, err := database.GetActiveAffiliateByCode(subscription.ReferredBy)
	if err != nil {
		logging.Infof("No active affiliate for code %s, skipping commission", subscription.ReferredBy)
		return
	}

	// Rate is read fresh on every payment, never cached
	commission := ComputeCommission(txn.Amount, affiliate.CommissionRate)

	referral := &models.Referral{
		AffiliateID:      affiliate.ID,
		ReferredUserID:   txn.UserID,
		ReferredPlan:     txn.Plan,
		PaymentAmount:    txn.Amount,
		CommissionAmount: commission,
		Status:           "approved",
		ProviderRef:      txn.ProviderRef,
	}

	if err := database.CreateReferral(referral); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Re-delivered approval, this payment was already credited
			logging.Infof("Referral for provider ref %s already credited", txn.ProviderRef)
			return
		}
		logging.Errorf("Failed to create referral for provider ref %s: %v", txn.ProviderRef, err)
		return
	}

	// Single-statement increment, safe under concurrent approvals
	if err := database.AddCommission(affiliate.ID, commission); err != nil {
		logging.Errorf("Failed to credit affiliate %s: %v", affiliate.Code, err)
		return
	}

	logging.Infof("Commission %.2f credited to affiliate %s for provider ref %s",
		commission, affiliate.Code, txn.ProviderRef)

	go s.emails.NotifyCommission(affiliate, referral)
}
