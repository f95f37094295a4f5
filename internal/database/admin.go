package database

import (
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
)

// TransactionCounts holds per-status transaction totals
type TransactionCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// CountTransactionsByStatus rolls transactions up by status
func CountTransactionsByStatus() (*TransactionCounts, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := DB.Model(&models.Transaction{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := &TransactionCounts{}
	for _, r := range rows {
		switch r.Status {
		case models.TransactionPending:
			counts.Pending = r.Count
		case models.TransactionApproved:
			counts.Approved = r.Count
		case models.TransactionRejected:
			counts.Rejected = r.Count
		}
	}
	return counts, nil
}

// SumApprovedRevenue totals the amount of all approved transactions
func SumApprovedRevenue() (float64, error) {
	var total float64
	err := DB.Model(&models.Transaction{}).
		Where("status = ?", models.TransactionApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// CountActiveSubscriptions counts subscriptions currently marked active
func CountActiveSubscriptions() (int64, error) {
	var count int64
	err := DB.Model(&models.Subscription{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// SumPendingPayouts totals what is owed to affiliates
func SumPendingPayouts() (float64, error) {
	var total float64
	err := DB.Model(&models.Affiliate{}).
		Select("COALESCE(SUM(pending_payout), 0)").
		Scan(&total).Error
	return total, err
}

// ToolUsageRollup aggregates generator invocations per tool
type ToolUsageRollup struct {
	Tool      string `json:"tool"`
	Total     int64  `json:"total"`
	Fallbacks int64  `json:"fallbacks"`
	Errors    int64  `json:"errors"`
}

// GetToolUsageRollup rolls tool usage up per tool, busiest first
func GetToolUsageRollup() ([]ToolUsageRollup, error) {
	var rollup []ToolUsageRollup
	err := DB.Model(&models.ToolUsage{}).
		Select(`tool,
			COUNT(*) as total,
			SUM(CASE WHEN status = 'fallback' THEN 1 ELSE 0 END) as fallbacks,
			SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END) as errors`).
		Group("tool").
		Order("total DESC").
		Scan(&rollup).Error
	return rollup, err
}

// ListRecentTransactions returns the most recent transactions for the
// admin dashboard
func ListRecentTransactions(limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var transactions []models.Transaction
	err := DB.Order("created_at DESC").Limit(limit).Find(&transactions).Error
	return transactions, err
}
