package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/services"
	"github.com/dinesync/restaurant-api/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Orders   *services.OrderService
	Payments *services.PaymentService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:       db,
		Orders:   services.NewOrderService(db),
		Payments: services.NewPaymentService(db),
	}
}

// GetAllOrders with user/status filters, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("OrderItems.MenuItem")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> owners see their own orders, staff see everything.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems.MenuItem").Preload("Payments").First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	role, _ := c.Get("role")
	if order.UserID != c.GetUint("user_id") && role == string(models.RoleCustomer) {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not have permission"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CreateOrder creates an order with optional line items and an optional
// inline payment. The completion estimate is computed once the items are
// in, explicitly, inside the same transaction.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		MenuItemID uint   `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity"`
		Notes      string `json:"notes"`
		ChefID     *uint  `json:"chef_id"`
	}
	var req struct {
		WaiterID *uint     `json:"waiter_id"`
		TableID  *uint     `json:"table_id"`
		Notes    string    `json:"notes"`
		Items    []itemReq `json:"order_items"`
		Payment  *struct {
			Amount    float64 `json:"amount" binding:"required"`
			Method    string  `json:"method" binding:"required"`
			TipAmount float64 `json:"tip_amount"`
			TaxAmount float64 `json:"tax_amount"`
			Discount  float64 `json:"discount"`
		} `json:"payment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			UserID:   c.GetUint("user_id"),
			WaiterID: req.WaiterID,
			TableID:  req.TableID,
			Status:   models.OrderStatusPending,
			Notes:    req.Notes,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, item.MenuItemID).Error; err != nil {
				return utils.NewNotFoundError("menu item not found")
			}

			quantity := item.Quantity
			if quantity < 1 {
				quantity = 1
			}

			orderItem := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menuItem.ID,
				Quantity:   quantity,
				Status:     models.OrderItemStatusPending,
				Notes:      item.Notes,
				ChefID:     item.ChefID,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		if _, err := oc.Orders.UpdateEstimation(tx, order.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	// Inline payment runs outside the order transaction: a failed charge
	// leaves the order persisted with status payment_failed.
	if req.Payment != nil {
		payment := models.Payment{
			OrderID:   order.ID,
			CashierID: c.GetUint("user_id"),
			Amount:    req.Payment.Amount,
			Method:    req.Payment.Method,
			TipAmount: req.Payment.TipAmount,
			TaxAmount: req.Payment.TaxAmount,
			Discount:  req.Payment.Discount,
		}
		if err := oc.Payments.Create(&payment); err != nil {
			utils.RespondAppError(c, err)
			return
		}
	}

	if err := oc.DB.Preload("OrderItems.MenuItem").Preload("Payments").First(&order, order.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created with %d items", order.ID, len(order.OrderItems))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder -> waiter/table/status/notes.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req struct {
		WaiterID *uint   `json:"waiter_id"`
		TableID  *uint   `json:"table_id"`
		Status   *string `json:"status"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	role, _ := c.Get("role")
	if order.UserID != c.GetUint("user_id") && role == string(models.RoleCustomer) {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not have permission"))
		return
	}

	if req.WaiterID != nil {
		order.WaiterID = req.WaiterID
	}
	if req.TableID != nil {
		order.TableID = req.TableID
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder cascades to the order's items.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	if err := oc.DB.Select("OrderItems").Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}
