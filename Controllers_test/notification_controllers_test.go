package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/controllers"
	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

func setupNotificationRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	notifCtrl := controllers.NewNotificationController(db)
	authed := router.Group("", authAs(userID, models.RoleWaiter))
	authed.POST("/notifications", notifCtrl.CreateNotification)
	authed.GET("/notifications", notifCtrl.GetMyNotifications)
	authed.GET("/notifications/unread-count", notifCtrl.GetUnreadCount)
	authed.PATCH("/notifications/:notif_id/read", notifCtrl.MarkAsRead)
	authed.PATCH("/notifications/mark-all-read", notifCtrl.MarkAllAsRead)
	authed.DELETE("/notifications/:notif_id", notifCtrl.DeleteNotification)
	return router
}

func TestNotificationFlow(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "notif_flow")

	sender := models.User{FullName: "Sender", Email: "sender@example.com", Role: models.RoleWaiter}
	require.NoError(t, db.Create(&sender).Error)
	recipient := models.User{FullName: "Recipient", Email: "recipient@example.com", Role: models.RoleChef}
	require.NoError(t, db.Create(&recipient).Error)

	senderRouter := setupNotificationRouter(db, sender.ID)
	w := doJSON(t, senderRouter, "POST", "/notifications", map[string]interface{}{
		"recipient_id": recipient.ID,
		"title":        "New order",
		"message":      "Table 4 placed an order",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "app", data["type"])
	notifID := itoa(uint(data["id"].(float64)))

	// unknown recipient
	w = doJSON(t, senderRouter, "POST", "/notifications", map[string]interface{}{
		"recipient_id": uint(999), "title": "x", "message": "y",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	recipientRouter := setupNotificationRouter(db, recipient.ID)
	w = doJSON(t, recipientRouter, "GET", "/notifications?unread=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, list, 1)

	w = doJSON(t, recipientRouter, "GET", "/notifications/unread-count", nil)
	count := parseResponse(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, count["unread_count"])

	// only the recipient may mark it read
	w = doJSON(t, senderRouter, "PATCH", "/notifications/"+notifID+"/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, recipientRouter, "PATCH", "/notifications/"+notifID+"/read", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, recipientRouter, "GET", "/notifications/unread-count", nil)
	count = parseResponse(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, count["unread_count"])
}

func TestMarkAllNotificationsRead(t *testing.T) {
	utils.InitLogger()
	db := newTestDB(t, "notif_markall")

	user := models.User{FullName: "Busy Chef", Email: "busy@example.com", Role: models.RoleChef}
	require.NoError(t, db.Create(&user).Error)
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Notification{
			RecipientID: user.ID, Title: "ping", Message: "pong", Type: "app",
		}).Error)
	}

	router := setupNotificationRouter(db, user.ID)
	w := doJSON(t, router, "PATCH", "/notifications/mark-all-read", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3 notifications marked as read", parseResponse(t, w)["message"])

	var unread int64
	db.Model(&models.Notification{}).Where("recipient_id = ? AND is_read = ?", user.ID, false).Count(&unread)
	assert.EqualValues(t, 0, unread)
}
