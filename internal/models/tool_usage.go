package models

// ToolUsage records one generator invocation for the admin usage rollups
type ToolUsage struct {
	BaseModel

	Tool       string `json:"tool" gorm:"not null;size:64;index"`
	UserID     string `json:"user_id" gorm:"size:64;index"`
	Status     string `json:"status" gorm:"size:20;index"` // ok, fallback, error
	DurationMS int64  `json:"duration_ms"`
}

// TableName overrides the default table name
func (ToolUsage) TableName() string {
	return "tool_usage"
}
