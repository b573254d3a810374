package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

// PaymentService records payments and runs them through the gateway
// stubs. No real gateway integration exists: cash always succeeds, and
// the M-Pesa and card paths fabricate a transaction id.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Create persists a pending payment and immediately processes it. The
// payment ends up completed or failed, and a completed payment also
// confirms its order.
func (s *PaymentService) Create(payment *models.Payment) error {
	if !models.ValidPaymentMethod(payment.Method) {
		return utils.NewValidationError(fmt.Sprintf("invalid payment method: %q", payment.Method))
	}
	if payment.Amount <= 0 {
		return utils.NewValidationError("amount must be positive")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, payment.OrderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NewNotFoundError("order not found")
			}
			return err
		}

		payment.Status = models.PaymentStatusPending
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		if s.process(payment) {
			now := time.Now().UTC()
			payment.Status = models.PaymentStatusCompleted
			payment.PaidAt = &now
			order.Status = models.OrderStatusConfirmed
		} else {
			payment.Status = models.PaymentStatusFailed
			order.Status = models.OrderStatusPaymentFailed
		}

		if err := tx.Save(payment).Error; err != nil {
			return err
		}
		return tx.Save(&order).Error
	})
}

// Update adjusts the amount fields of a pending payment. A completed
// payment is immutable.
func (s *PaymentService) Update(paymentID uint, fields map[string]interface{}) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("payment not found")
		}
		return nil, err
	}

	if payment.Status == models.PaymentStatusCompleted {
		return nil, utils.NewConflictError("cannot modify completed payment")
	}

	allowed := map[string]bool{"amount": true, "tip_amount": true, "tax_amount": true, "discount": true}
	updates := map[string]interface{}{}
	for k, v := range fields {
		if allowed[k] {
			updates[k] = v
		}
	}
	if len(updates) > 0 {
		if err := s.db.Model(&payment).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &payment, nil
}

// Delete removes a payment unless it has completed.
func (s *PaymentService) Delete(paymentID uint) error {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NewNotFoundError("payment not found")
		}
		return err
	}

	if payment.Status == models.PaymentStatusCompleted {
		return utils.NewConflictError("cannot delete completed payment")
	}

	return s.db.Delete(&payment).Error
}

func (s *PaymentService) process(payment *models.Payment) bool {
	switch payment.Method {
	case models.PaymentMethodCash:
		return true
	case models.PaymentMethodMpesa:
		txn := "MPESA_" + randomRef(10)
		payment.TransactionID = &txn
		return true
	case models.PaymentMethodCreditCard, models.PaymentMethodDebitCard:
		txn := "CARD_" + randomRef(12)
		payment.TransactionID = &txn
		return true
	}
	return false
}

func randomRef(n int) string {
	ref := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	if n > len(ref) {
		n = len(ref)
	}
	return ref[:n]
}
