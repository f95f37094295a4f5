package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel provides common fields for all database models
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// Transaction status values as mapped from the ePayco response code.
const (
	TransactionPending  = "pending"
	TransactionApproved = "approved"
	TransactionRejected = "rejected"
)

// StatusFromResponseCode maps an ePayco x_cod_response value to an
// internal transaction status. Code 1 is approved, 3 keeps the
// transaction pending, 2 and 4 are rejections. Anything else (including
// a missing code) is treated as rejected.
func StatusFromResponseCode(code int) string {
	switch code {
	case 1:
		return TransactionApproved
	case 3:
		return TransactionPending
	default:
		return TransactionRejected
	}
}
