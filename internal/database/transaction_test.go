package database

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	SetDB(db)
}

func TestUpsertTransactionReturnsPreviousStatus(t *testing.T) {
	setupTestDB(t)

	txn := &models.Transaction{
		ProviderRef: "ref-1",
		UserID:      "user-1",
		Plan:        "pro",
		Amount:      19,
		Status:      models.TransactionPending,
	}
	previous, err := UpsertTransactionByProviderRef(txn)
	require.NoError(t, err)
	require.Empty(t, previous)

	update := &models.Transaction{
		ProviderRef: "ref-1",
		UserID:      "user-1",
		Plan:        "pro",
		Amount:      19,
		Status:      models.TransactionApproved,
	}
	previous, err = UpsertTransactionByProviderRef(update)
	require.NoError(t, err)
	require.Equal(t, models.TransactionPending, previous)

	// The existing row was updated in place
	require.Equal(t, txn.ID, update.ID)

	var count int64
	require.NoError(t, DB.Model(&models.Transaction{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestRenewSubscriptionPreservesAttribution(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, TrackReferral("user-1", "AFF1"))

	now := time.Now()
	subscription, err := RenewSubscription("user-1", "pro", now)
	require.NoError(t, err)
	require.True(t, subscription.IsActive)
	require.Equal(t, "AFF1", subscription.ReferredBy)
	require.WithinDuration(t, now.AddDate(0, 1, 0), subscription.ExpiresAt, time.Second)

	// Renewing again moves the expiry forward from the new approval time
	later := now.Add(48 * time.Hour)
	subscription, err = RenewSubscription("user-1", "premium", later)
	require.NoError(t, err)
	require.Equal(t, "premium", subscription.Plan)
	require.Equal(t, "AFF1", subscription.ReferredBy)
	require.WithinDuration(t, later.AddDate(0, 1, 0), subscription.ExpiresAt, time.Second)

	var count int64
	require.NoError(t, DB.Model(&models.Subscription{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestTrackReferralNeverOverwrites(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, TrackReferral("user-1", "FIRST"))
	require.NoError(t, TrackReferral("user-1", "SECOND"))

	subscription, err := GetSubscriptionByUserID("user-1")
	require.NoError(t, err)
	require.Equal(t, "FIRST", subscription.ReferredBy)
}

func TestCreateReferralDuplicateRef(t *testing.T) {
	setupTestDB(t)

	affiliate := &models.Affiliate{Code: "AFF1", IsActive: true}
	require.NoError(t, CreateAffiliate(affiliate))

	referral := models.Referral{
		AffiliateID:      affiliate.ID,
		ReferredUserID:   "user-1",
		ProviderRef:      "ref-dup",
		CommissionAmount: 1.9,
		Status:           "approved",
	}
	require.NoError(t, CreateReferral(&referral))

	second := referral
	second.ID = 0
	err := CreateReferral(&second)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestAddCommissionAccumulates(t *testing.T) {
	setupTestDB(t)

	affiliate := &models.Affiliate{Code: "AFF1", IsActive: true}
	require.NoError(t, CreateAffiliate(affiliate))

	require.NoError(t, AddCommission(affiliate.ID, 1.90))
	require.NoError(t, AddCommission(affiliate.ID, 4.90))

	affiliate, err := GetAffiliateByCode("AFF1")
	require.NoError(t, err)
	require.InDelta(t, 6.80, affiliate.TotalEarned, 0.001)
	require.InDelta(t, 6.80, affiliate.PendingPayout, 0.001)
}

func TestSetAffiliateActiveUnknownCode(t *testing.T) {
	setupTestDB(t)

	err := SetAffiliateActive("GHOST", false)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
