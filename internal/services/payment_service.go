package services

import (
	"fmt"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/database"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/models"
	"github.com/jcotes2k/digital-growth-marketing-sub002/pkg/logging"
)

// WebhookNotification carries the fields of an ePayco confirmation call.
// The gateway posts either form-urlencoded or JSON bodies, the tags
// cover both.
type WebhookNotification struct {
	RefPayco       string  `form:"x_ref_payco" json:"x_ref_payco"`
	TransactionID  string  `form:"x_transaction_id" json:"x_transaction_id"`
	Amount         float64 `form:"x_amount" json:"x_amount"`
	Currency       string  `form:"x_currency_code" json:"x_currency_code"`
	CodResponse    int     `form:"x_cod_response" json:"x_cod_response"`
	Response       string  `form:"x_response" json:"x_response"`
	ResponseReason string  `form:"x_response_reason_text" json:"x_response_reason_text"`
	UserID         string  `form:"x_extra1" json:"x_extra1"`
	Plan           string  `form:"x_extra2" json:"x_extra2"`
	Invoice        string  `form:"x_extra3" json:"x_extra3"`
}

// WebhookResult reports what a webhook delivery did
type WebhookResult struct {
	Status  string
	Message string
}

// PaymentService reconciles gateway webhook deliveries against the
// transaction and subscription tables
type PaymentService struct {
	commissions *CommissionService
}

// NewPaymentService creates a payment service
func NewPaymentService(commissions *CommissionService) *PaymentService {
	return &PaymentService{commissions: commissions}
}

// ProcessWebhook upserts the transaction for this delivery and, on
// approval, renews the subscription and runs commission processing.
// Deliveries are idempotent per provider ref: replays update the same
// row and cannot double-credit an affiliate. A subscription write
// failure after a successful transaction upsert is reported in the
// message but still acknowledged, so the provider does not retry a
// delivery that was recorded.
func (s *PaymentService) ProcessWebhook(n *WebhookNotification) (*WebhookResult, error) {
	status := models.StatusFromResponseCode(n.CodResponse)

	txn := &models.Transaction{
		ProviderRef: n.RefPayco,
		UserID:      n.UserID,
		Plan:        n.Plan,
		Amount:      n.Amount,
		Currency:    n.Currency,
		Invoice:     n.Invoice,
		Status:      status,
		RawResponse: fmt.Sprintf("%s: %s", n.Response, n.ResponseReason),
	}

	previousStatus, err := database.UpsertTransactionByProviderRef(txn)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	logging.Infof("Webhook processed - ref: %s, code: %d, status: %s (was: %s)",
		n.RefPayco, n.CodResponse, status, previousStatus)

	if status != models.TransactionApproved {
		return &WebhookResult{Status: status, Message: "transaction recorded"}, nil
	}

	// Renewal runs on every approved delivery, not only the first: a
	// late or duplicate notification resets the expiry to now+1 month,
	// which is harmless under last-write-wins semantics.
	if _, err := database.RenewSubscription(n.UserID, n.Plan, time.Now()); err != nil {
		logging.Errorf("Subscription renewal failed for user %s: %v", n.UserID, err)
		return &WebhookResult{
			Status:  status,
			Message: "transaction recorded, subscription update failed",
		}, nil
	}

	s.commissions.ProcessApprovedPayment(txn)

	return &WebhookResult{Status: status, Message: "payment approved"}, nil
}
