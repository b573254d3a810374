package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetMyNotifications lists the caller's notifications, newest first.
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	userID := c.GetUint("user_id")

	limit := 20
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}

	query := nc.DB.Where("recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("created_at desc").Limit(limit).Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notifications", notifications)
}

// GetUnreadCount
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	var count int64
	if err := nc.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", c.GetUint("user_id"), false).
		Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unread count", gin.H{"unread_count": count})
}

// MarkAsRead flips the read flag on one of the caller's notifications.
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	var notification models.Notification
	if err := nc.DB.Where("id = ? AND recipient_id = ?", c.Param("notif_id"), c.GetUint("user_id")).
		First(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
		return
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := nc.DB.Save(&notification).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notification)
}

// MarkAllAsRead
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	result := nc.DB.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", c.GetUint("user_id"), false).
		Update("is_read", true)
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("%d notifications marked as read", result.RowsAffected), nil)
}

// CreateNotification -> addressed to a specific user, sender is the caller.
func (nc *NotificationController) CreateNotification(c *gin.Context) {
	var req struct {
		RecipientID uint    `json:"recipient_id" binding:"required"`
		Title       string  `json:"title" binding:"required"`
		Message     string  `json:"message" binding:"required"`
		Type        string  `json:"type"`
		Priority    int     `json:"priority"`
		ActionURL   *string `json:"action_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var recipient models.User
	if err := nc.DB.First(&recipient, req.RecipientID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("recipient not found"))
		return
	}

	senderID := c.GetUint("user_id")
	expires := time.Now().AddDate(0, 0, 7)

	notification := models.Notification{
		RecipientID: req.RecipientID,
		SenderID:    &senderID,
		Title:       req.Title,
		Message:     req.Message,
		Type:        req.Type,
		Priority:    req.Priority,
		ActionURL:   req.ActionURL,
		ExpiresAt:   &expires,
	}
	if notification.Type == "" {
		notification.Type = "app"
	}

	if err := nc.DB.Create(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Notification %d created for user %d", notification.ID, notification.RecipientID)
	utils.RespondJSON(c, http.StatusCreated, "Notification created", notification)
}

// DeleteNotification -> recipient-scoped.
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	var notification models.Notification
	if err := nc.DB.Where("id = ? AND recipient_id = ?", c.Param("notif_id"), c.GetUint("user_id")).
		First(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("notification not found"))
		return
	}

	if err := nc.DB.Delete(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"notif_id": notification.ID})
}
