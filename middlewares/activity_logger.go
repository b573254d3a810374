package middlewares

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

// ActivityLogger appends an audit row for every authenticated mutating
// request. Failures to write the log never fail the request itself.
func ActivityLogger(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}

		userIDValue, exists := c.Get("user_id")
		if !exists {
			return
		}
		userID, ok := userIDValue.(uint)
		if !ok {
			return
		}

		payload, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		entry := models.ActivityLog{
			UserID:      userID,
			ActionType:  c.Request.Method + " " + c.FullPath(),
			Description: c.Request.Method + " " + c.Request.URL.Path,
			IPAddress:   c.ClientIP(),
			UserAgent:   c.Request.UserAgent(),
			Data:        datatypes.JSON(payload),
			Timestamp:   time.Now().UTC(),
		}

		if err := db.Create(&entry).Error; err != nil {
			utils.ErrorLogger.Errorf("failed to write activity log: %v", err)
		}
	}
}
