package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// UpdateEstimation recomputes the order's estimated completion time as
// the slowest item's preparation time counted from the order's creation
// time. An order without items estimates to its creation time. Handlers
// call this explicitly after inserting items; there is no database
// trigger behind it.
func (s *OrderService) UpdateEstimation(tx *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := tx.Preload("OrderItems.MenuItem").First(&order, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("order not found")
		}
		return nil, err
	}

	maxPrep := 0
	for _, item := range order.OrderItems {
		if item.MenuItem.PreparationTime > maxPrep {
			maxPrep = item.MenuItem.PreparationTime
		}
	}

	estimated := order.CreatedAt.Add(time.Duration(maxPrep) * time.Minute)
	order.EstimatedCompletion = &estimated

	if err := tx.Model(&order).Update("estimated_completion", estimated).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
