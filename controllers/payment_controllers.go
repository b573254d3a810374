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

type PaymentController struct {
	DB      *gorm.DB
	Service *services.PaymentService
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		DB:      db,
		Service: services.NewPaymentService(db),
	}
}

// GetAllPayments
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	query := pc.DB
	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All payments", payments)
}

// GetPaymentByID
func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	var payment models.Payment
	if err := pc.DB.First(&payment, c.Param("payment_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("payment not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// CreatePayment records a payment and runs it through the gateway stub.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID   uint    `json:"order_id" binding:"required"`
		Amount    float64 `json:"amount" binding:"required"`
		Method    string  `json:"method" binding:"required"`
		TipAmount float64 `json:"tip_amount"`
		TaxAmount float64 `json:"tax_amount"`
		Discount  float64 `json:"discount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	payment := models.Payment{
		OrderID:   req.OrderID,
		CashierID: c.GetUint("user_id"),
		Amount:    req.Amount,
		Method:    req.Method,
		TipAmount: req.TipAmount,
		TaxAmount: req.TaxAmount,
		Discount:  req.Discount,
	}

	if err := pc.Service.Create(&payment); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Payment %d (%s) for order %d -> %s",
		payment.ID, payment.Method, payment.OrderID, payment.Status)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// UpdatePayment adjusts amount fields; completed payments are immutable.
func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	var payment models.Payment
	if err := pc.DB.First(&payment, c.Param("payment_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("payment not found"))
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := pc.Service.Update(payment.ID, req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment updated", updated)
}

// DeletePayment; completed payments are immutable.
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	var payment models.Payment
	if err := pc.DB.First(&payment, c.Param("payment_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("payment not found"))
		return
	}

	if err := pc.Service.Delete(payment.ID); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment deleted", gin.H{"payment_id": payment.ID})
}
