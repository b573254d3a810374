package models

import "time"

const (
	OrderStatusPending       = "pending"
	OrderStatusConfirmed     = "confirmed"
	OrderStatusPaymentFailed = "payment_failed"
	OrderStatusInProgress    = "in_progress"
	OrderStatusReady         = "ready"
	OrderStatusCompleted     = "completed"
	OrderStatusCanceled      = "canceled"
)

type Order struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	UserID              uint        `gorm:"not null" json:"user_id"`
	User                User        `gorm:"foreignKey:UserID" json:"-"`
	WaiterID            *uint       `gorm:"index" json:"waiter_id,omitempty"`
	Waiter              *User       `gorm:"foreignKey:WaiterID" json:"-"`
	TableID             *uint       `json:"table_id,omitempty"`
	Table               *Table      `gorm:"foreignKey:TableID" json:"-"`
	Status              string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Notes               string      `gorm:"type:text" json:"notes"`
	EstimatedCompletion *time.Time  `json:"estimated_completion,omitempty"`
	CreatedAt           time.Time   `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items"`
	Payments            []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

// TotalAmount sums quantity * price over the loaded order items.
// OrderItems and their MenuItem must be preloaded.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.OrderItems {
		total += float64(item.Quantity) * item.MenuItem.Price
	}
	return total
}
