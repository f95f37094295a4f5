package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"

	"github.com/stretchr/testify/require"
)

func setupCommissionTest(t *testing.T) *CommissionService {
	t.Helper()
	logging.InitLogging()
	config.AppConfig = &config.Config{Mode: "test"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.OpenSQLite(dsn)
	require.NoError(t, err)
	database.SetDB(db)

	return NewCommissionService(NewEmailService())
}

func TestComputeCommission(t *testing.T) {
	cases := []struct {
		amount   float64
		rate     float64
		expected float64
	}{
		{19, 0.10, 1.90},
		{49, 0.10, 4.90},
		{99, 0.10, 9.90},
		{33.33, 0.075, 2.50}, // 2.49975 rounds half-up
		{10.05, 0.10, 1.01},  // 1.005 rounds half-up
		{0, 0.10, 0},
		{19, 0, 0},
	}

	for _, tc := range cases {
		got := ComputeCommission(tc.amount, tc.rate)
		require.InDelta(t, tc.expected, got, 0.0001, "%.2f × %.3f", tc.amount, tc.rate)
	}
}

func TestProcessApprovedPaymentCreditsAffiliate(t *testing.T) {
	service := setupCommissionTest(t)

	affiliate := &models.Affiliate{Code: "AFF1", IsActive: true, CommissionRate: 0.20}
	require.NoError(t, database.CreateAffiliate(affiliate))
	require.NoError(t, database.TrackReferral("user-1", "AFF1"))

	service.ProcessApprovedPayment(&models.Transaction{
		ProviderRef: "ref-1",
		UserID:      "user-1",
		Plan:        "pro",
		Amount:      19,
		Status:      models.TransactionApproved,
	})

	// The affiliate's own rate applies, not the default
	affiliate, err := database.GetAffiliateByCode("AFF1")
	require.NoError(t, err)
	require.InDelta(t, 3.80, affiliate.TotalEarned, 0.001)
	require.InDelta(t, 3.80, affiliate.PendingPayout, 0.001)

	referrals, err := database.GetReferralsByAffiliate(affiliate.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	require.Equal(t, "approved", referrals[0].Status)
	require.InDelta(t, 3.80, referrals[0].CommissionAmount, 0.001)
}

func TestProcessApprovedPaymentIsExactlyOncePerRef(t *testing.T) {
	service := setupCommissionTest(t)

	affiliate := &models.Affiliate{Code: "AFF2", IsActive: true, CommissionRate: 0.10}
	require.NoError(t, database.CreateAffiliate(affiliate))
	require.NoError(t, database.TrackReferral("user-2", "AFF2"))

	txn := &models.Transaction{
		ProviderRef: "ref-2",
		UserID:      "user-2",
		Plan:        "pro",
		Amount:      19,
		Status:      models.TransactionApproved,
	}
	service.ProcessApprovedPayment(txn)
	service.ProcessApprovedPayment(txn)
	service.ProcessApprovedPayment(txn)

	affiliate, err := database.GetAffiliateByCode("AFF2")
	require.NoError(t, err)
	require.InDelta(t, 1.90, affiliate.TotalEarned, 0.001)

	referrals, err := database.GetReferralsByAffiliate(affiliate.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
}

func TestProcessApprovedPaymentDistinctRefsAccumulate(t *testing.T) {
	service := setupCommissionTest(t)

	affiliate := &models.Affiliate{Code: "AFF3", IsActive: true, CommissionRate: 0.10}
	require.NoError(t, database.CreateAffiliate(affiliate))
	require.NoError(t, database.TrackReferral("user-3", "AFF3"))

	for i := 0; i < 2; i++ {
		service.ProcessApprovedPayment(&models.Transaction{
			ProviderRef: fmt.Sprintf("ref-3-%d", i),
			UserID:      "user-3",
			Plan:        "pro",
			Amount:      19,
			Status:      models.TransactionApproved,
		})
	}

	// A monthly renewal is a new payment and earns again
	affiliate, err := database.GetAffiliateByCode("AFF3")
	require.NoError(t, err)
	require.InDelta(t, 3.80, affiliate.TotalEarned, 0.001)
}

func TestProcessApprovedPaymentUnreferredUser(t *testing.T) {
	service := setupCommissionTest(t)

	service.ProcessApprovedPayment(&models.Transaction{
		ProviderRef: "ref-4",
		UserID:      "user-4",
		Amount:      19,
		Status:      models.TransactionApproved,
	})

	var count int64
	require.NoError(t, database.GetDB().Model(&models.Referral{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestProcessApprovedPaymentInactiveAffiliate(t *testing.T) {
	service := setupCommissionTest(t)

	affiliate := &models.Affiliate{Code: "AFF5", IsActive: false, CommissionRate: 0.10}
	require.NoError(t, database.CreateAffiliate(affiliate))
	require.NoError(t, database.TrackReferral("user-5", "AFF5"))

	service.ProcessApprovedPayment(&models.Transaction{
		ProviderRef: "ref-5",
		UserID:      "user-5",
		Amount:      19,
		Status:      models.TransactionApproved,
	})

	affiliate, err := database.GetAffiliateByCode("AFF5")
	require.NoError(t, err)
	require.Zero(t, affiliate.TotalEarned)
}
