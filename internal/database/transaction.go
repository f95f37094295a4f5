package database

import (
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"

	"gorm.io/gorm"
)

// UpsertTransactionByProviderRef inserts or updates the transaction row
// keyed by provider_ref and returns the status the row had before this
// delivery ("" when the row is new). Provider retries therefore collapse
// into a single row, last write wins.
func UpsertTransactionByProviderRef(txn *models.Transaction) (string, error) {
	var previousStatus string

	err := DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Transaction
		err := tx.Where("provider_ref = ?", txn.ProviderRef).
			First(&existing).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return tx.Create(txn).Error
			}
			return err
		}

		previousStatus = existing.Status

		existing.UserID = txn.UserID
		existing.Plan = txn.Plan
		existing.Amount = txn.Amount
		existing.Currency = txn.Currency
		existing.Invoice = txn.Invoice
		existing.Status = txn.Status
		existing.RawResponse = txn.RawResponse

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*txn = existing
		return nil
	})

	return previousStatus, err
}

// GetTransactionByProviderRef looks a transaction up by its gateway reference
func GetTransactionByProviderRef(providerRef string) (*models.Transaction, error) {
	var txn models.Transaction
	err := DB.Where("provider_ref = ?", providerRef).First(&txn).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// GetSubscriptionByUserID returns the user's subscription row
func GetSubscriptionByUserID(userID string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := DB.Where("user_id = ?", userID).First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// RenewSubscription upserts the user's subscription on an approved
// payment: the plan switches to the paid one and expires_at resets to one
// calendar month from now. Renewal semantics, not additive — a
// re-delivered approval simply resets the expiry again. referred_by is
// preserved on existing rows.
func RenewSubscription(userID, plan string, now time.Time) (*models.Subscription, error) {
	var result *models.Subscription

	err := DB.Transaction(func(tx *gorm.DB) error {
		var subscription models.Subscription
		err := tx.Where("user_id = ?", userID).
			First(&subscription).Error

		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			subscription = models.Subscription{
				UserID:    userID,
				StartedAt: now,
			}
		}

		subscription.Plan = plan
		subscription.IsActive = true
		subscription.ExpiresAt = now.AddDate(0, 1, 0)
		if subscription.StartedAt.IsZero() {
			subscription.StartedAt = now
		}

		if err := tx.Save(&subscription).Error; err != nil {
			return err
		}
		result = &subscription
		return nil
	})

	return result, err
}

// TrackReferral records which affiliate code referred a user, creating an
// inactive subscription shell when the user has not paid yet. An existing
// attribution is never overwritten.
func TrackReferral(userID, code string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var subscription models.Subscription
		err := tx.Where("user_id = ?", userID).First(&subscription).Error

		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			return tx.Create(&models.Subscription{
				UserID:     userID,
				ReferredBy: code,
			}).Error
		}

		if subscription.ReferredBy != "" {
			return nil
		}
		return tx.Model(&subscription).Update("referred_by", code).Error
	})
}
