package models

import "time"

type Notification struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	RecipientID uint       `gorm:"not null;index" json:"recipient_id"`
	Recipient   User       `gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	SenderID    *uint      `json:"sender_id,omitempty"`
	Sender      *User      `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Type        string     `gorm:"type:varchar(50)" json:"type"`
	IsRead      bool       `gorm:"default:false" json:"is_read"`
	Priority    int        `gorm:"default:0" json:"priority"`
	ActionURL   *string    `gorm:"type:varchar(255)" json:"action_url,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
