package models

import (
	"time"
)

// Subscription is the single source of truth for a user's plan access.
// There is at most one row per user; approved payments renew it by
// resetting expires_at to one calendar month from the approval.
type Subscription struct {
	BaseModel

	UserID   string `json:"user_id" gorm:"not null;size:64;uniqueIndex"`
	Plan     string `json:"plan" gorm:"size:32"`
	IsActive bool   `json:"is_active" gorm:"default:false;index"`

	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`

	// Affiliate code captured at signup, empty when the user was not
	// referred. Approved payments for this user credit that affiliate.
	ReferredBy string `json:"referred_by" gorm:"size:32;index"`
}

// TableName overrides the default table name
func (Subscription) TableName() string {
	return "subscriptions"
}

// IsCurrent reports whether the subscription grants access right now
func (s *Subscription) IsCurrent() bool {
	return s.IsActive && s.ExpiresAt.After(time.Now())
}
