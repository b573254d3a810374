package models

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

const (
	PaymentMethodCash       = "cash"
	PaymentMethodMpesa      = "mpesa"
	PaymentMethodCreditCard = "credit_card"
	PaymentMethodDebitCard  = "debit_card"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodMpesa, PaymentMethodCreditCard, PaymentMethodDebitCard:
		return true
	}
	return false
}

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       uint       `gorm:"not null" json:"order_id"`
	Order         Order      `gorm:"foreignKey:OrderID" json:"-"`
	CashierID     uint       `gorm:"not null" json:"cashier_id"`
	Cashier       User       `gorm:"foreignKey:CashierID" json:"-"`
	Amount        float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method        string     `gorm:"type:varchar(50);not null" json:"method"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID *string    `gorm:"type:varchar(100);unique" json:"transaction_id,omitempty"`
	TipAmount     float64    `gorm:"type:decimal(10,2);default:0" json:"tip_amount"`
	TaxAmount     float64    `gorm:"type:decimal(10,2);default:0" json:"tax_amount"`
	Discount      float64    `gorm:"type:decimal(10,2);default:0" json:"discount"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updated_at"`
}
