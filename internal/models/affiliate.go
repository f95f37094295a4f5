package models

// Affiliate represents a referrer enrolled in the partner program.
// total_earned and pending_payout only ever grow through single-statement
// database increments, never read-modify-write.
type Affiliate struct {
	BaseModel

	Code     string `json:"code" gorm:"not null;size:32;uniqueIndex"`
	Name     string `json:"name" gorm:"size:120"`
	Email    string `json:"email" gorm:"size:255"`
	IsActive bool   `json:"is_active" gorm:"default:true;index"`

	// Fraction of each referred payment awarded as commission (0.10 = 10%)
	CommissionRate float64 `json:"commission_rate" gorm:"default:0.10"`

	TotalEarned   float64 `json:"total_earned" gorm:"default:0"`
	PendingPayout float64 `json:"pending_payout" gorm:"default:0"`
}

// TableName overrides the default table name
func (Affiliate) TableName() string {
	return "affiliates"
}

// Referral is the append-only audit trail of commission events: one row
// per approved payment attributable to an affiliate. provider_ref carries
// a unique index so a re-delivered approval webhook cannot credit the
// same payment twice.
type Referral struct {
	BaseModel

	AffiliateID      uint    `json:"affiliate_id" gorm:"not null;index"`
	ReferredUserID   string  `json:"referred_user_id" gorm:"not null;size:64;index"`
	ReferredPlan     string  `json:"referred_plan" gorm:"size:32"`
	PaymentAmount    float64 `json:"payment_amount"`
	CommissionAmount float64 `json:"commission_amount"`
	Status           string  `json:"status" gorm:"size:20;index"` // approved on insert, paid after payout
	ProviderRef      string  `json:"provider_ref" gorm:"not null;size:100;uniqueIndex"`
}

// TableName overrides the default table name
func (Referral) TableName() string {
	return "referrals"
}
