package models

// Transaction stores one payment attempt reported by the gateway.
// Rows are upserted keyed on provider_ref so repeated webhook
// deliveries for the same attempt never create duplicates.
type Transaction struct {
	BaseModel

	ProviderRef string  `json:"provider_ref" gorm:"not null;size:100;uniqueIndex"` // ePayco ref_payco
	UserID      string  `json:"user_id" gorm:"not null;size:64;index"`
	Plan        string  `json:"plan" gorm:"size:32"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency" gorm:"size:8"`
	Invoice     string  `json:"invoice" gorm:"size:100;index"`
	Status      string  `json:"status" gorm:"not null;size:20;index"` // pending, approved, rejected

	// Raw gateway response text, kept for support and dispute handling
	RawResponse string `json:"raw_response" gorm:"type:text"`
}

// TableName overrides the default table name
func (Transaction) TableName() string {
	return "transactions"
}
