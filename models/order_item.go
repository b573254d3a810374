package models

import "time"

const (
	OrderItemStatusPending    = "pending"
	OrderItemStatusInProgress = "in_progress"
	OrderItemStatusReady      = "ready"
	OrderItemStatusServed     = "served"
)

type OrderItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	OrderID     uint       `gorm:"not null" json:"order_id"`
	Order       Order      `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID  uint       `gorm:"not null" json:"menu_item_id"`
	MenuItem    MenuItem   `gorm:"foreignKey:MenuItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity    int        `gorm:"not null;default:1" json:"quantity"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes       string     `gorm:"type:varchar(255)" json:"notes"`
	ChefID      *uint      `json:"chef_id,omitempty"`
	Chef        *User      `gorm:"foreignKey:ChefID" json:"-"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}
