package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/config"

	"github.com/google/uuid"
)

// ErrInvalidPlan is returned when the requested plan is not in the
// price table
var ErrInvalidPlan = errors.New("invalid plan")

// CheckoutData is the opaque configuration blob the client-side checkout
// widget opens with. extra1..3 round-trip through the gateway and come
// back on the confirmation webhook for correlation.
type CheckoutData struct {
	PublicKey    string `json:"publicKey"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Invoice      string `json:"invoice"`
	Currency     string `json:"currency"`
	Amount       string `json:"amount"`
	TaxBase      string `json:"taxBase"`
	Tax          string `json:"tax"`
	Country      string `json:"country"`
	Lang         string `json:"lang"`
	Confirmation string `json:"confirmation"`
	Response     string `json:"response"`
	NameClient   string `json:"nameClient"`
	Email        string `json:"email"`
	Extra1       string `json:"extra1"` // user id
	Extra2       string `json:"extra2"` // plan
	Extra3       string `json:"extra3"` // invoice
	Test         bool   `json:"test"`
}

// CheckoutService builds checkout widget sessions
type CheckoutService struct{}

// NewCheckoutService creates a checkout service
func NewCheckoutService() *CheckoutService {
	return &CheckoutService{}
}

// BuildSession resolves the plan and returns the widget configuration.
// Nothing is persisted here — the transaction row appears only when the
// confirmation webhook fires, so an abandoned checkout leaves no trace.
func (s *CheckoutService) BuildSession(userID, plan, userEmail, userName string) (*CheckoutData, error) {
	priceEntry, ok := config.AppConfig.Plans[plan]
	if !ok {
		return nil, ErrInvalidPlan
	}

	invoice := NewInvoiceID()

	return &CheckoutData{
		PublicKey:    config.AppConfig.EpaycoPublicKey,
		Name:         priceEntry.Name,
		Description:  fmt.Sprintf("%s subscription", priceEntry.Name),
		Invoice:      invoice,
		Currency:     strings.ToLower(priceEntry.Currency),
		Amount:       fmt.Sprintf("%.2f", priceEntry.Amount),
		TaxBase:      "0",
		Tax:          "0",
		Country:      "co",
		Lang:         "en",
		Confirmation: config.AppConfig.ConfirmationURL,
		Response:     config.AppConfig.ResponseURL,
		NameClient:   userName,
		Email:        userEmail,
		Extra1:       userID,
		Extra2:       plan,
		Extra3:       invoice,
		Test:         config.AppConfig.EpaycoTest,
	}, nil
}

// NewInvoiceID generates an invoice identifier unique per session. A
// timestamp plus a random suffix is enough to avoid provider-side
// collisions, nothing stronger is needed.
func NewInvoiceID() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("GS-%d-%s", time.Now().Unix(), suffix)
}
