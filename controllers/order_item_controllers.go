package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/services"
	"github.com/dinesync/restaurant-api/utils"
)

type OrderItemController struct {
	DB     *gorm.DB
	Orders *services.OrderService
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{
		DB:     db,
		Orders: services.NewOrderService(db),
	}
}

// GetAllOrderItems with order/menu-item/status filters.
func (oic *OrderItemController) GetAllOrderItems(c *gin.Context) {
	query := oic.DB.Preload("MenuItem")
	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if menuItemID := c.Query("menu_item_id"); menuItemID != "" {
		query = query.Where("menu_item_id = ?", menuItemID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var items []models.OrderItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of order items", items)
}

// GetOrderItemByID
func (oic *OrderItemController) GetOrderItemByID(c *gin.Context) {
	var item models.OrderItem
	if err := oic.DB.Preload("MenuItem").First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item detail", item)
}

// CreateOrderItem adds a line to an existing order and recomputes the
// order's completion estimate in the same transaction.
func (oic *OrderItemController) CreateOrderItem(c *gin.Context) {
	var req struct {
		OrderID    uint   `json:"order_id" binding:"required"`
		MenuItemID uint   `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity"`
		Notes      string `json:"notes"`
		ChefID     *uint  `json:"chef_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("quantity must be at least 1"))
		return
	}

	var order models.Order
	if err := oic.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}

	role, _ := c.Get("role")
	if order.UserID != c.GetUint("user_id") && role == string(models.RoleCustomer) {
		utils.RespondError(c, http.StatusForbidden, errors.New("you do not have permission"))
		return
	}

	var item models.OrderItem
	err := oic.DB.Transaction(func(tx *gorm.DB) error {
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, req.MenuItemID).Error; err != nil {
			return utils.NewNotFoundError("menu item not found")
		}

		item = models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Quantity:   req.Quantity,
			Status:     models.OrderItemStatusPending,
			Notes:      req.Notes,
			ChefID:     req.ChefID,
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}

		_, err := oic.Orders.UpdateEstimation(tx, order.ID)
		return err
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order item created", item)
}

// UpdateOrderItem -> quantity/status/notes/chef; started/completed
// timestamps follow the kitchen status.
func (oic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	var req struct {
		Quantity *int    `json:"quantity"`
		Status   *string `json:"status"`
		Notes    *string `json:"notes"`
		ChefID   *uint   `json:"chef_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.OrderItem
	if err := oic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order item not found"))
		return
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("quantity must be at least 1"))
			return
		}
		item.Quantity = *req.Quantity
	}
	if req.Status != nil {
		now := time.Now()
		switch *req.Status {
		case models.OrderItemStatusInProgress:
			item.StartedAt = &now
		case models.OrderItemStatusReady:
			item.CompletedAt = &now
		}
		item.Status = *req.Status
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.ChefID != nil {
		item.ChefID = req.ChefID
	}

	if err := oic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item updated", item)
}

// DeleteOrderItem removes a line and re-estimates the parent order.
func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	var item models.OrderItem
	if err := oic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("order item not found"))
		return
	}

	err := oic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		_, err := oic.Orders.UpdateEstimation(tx, item.OrderID)
		return err
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order item deleted", gin.H{"item_id": item.ID})
}
