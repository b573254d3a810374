package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityLog is an append-only audit trail. Rows are only ever inserted.
type ActivityLog struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"not null" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	ActionType  string         `gorm:"type:varchar(50);not null" json:"action_type"`
	Description string         `gorm:"type:text" json:"description"`
	IPAddress   string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent   string         `gorm:"type:text" json:"-"`
	Data        datatypes.JSON `json:"data,omitempty"`
	Timestamp   time.Time      `gorm:"not null;index" json:"timestamp"`
}
