package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetAllUsers -> admin listing, optional status filter
func (uc *UserController) GetAllUsers(c *gin.Context) {
	query := uc.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

// GetUserByID
func (uc *UserController) GetUserByID(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("user_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User detail", user)
}

// UpdateProfile lets the authenticated user change their own fields.
func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req struct {
		FullName  *string `json:"full_name"`
		Email     *string `json:"email"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Account updated successfully", user)
}

// ChangeUserStatus -> active/suspended/banned; suspension requires days.
func (uc *UserController) ChangeUserStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Days   *int   `json:"days"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Status != models.UserStatusActive &&
		req.Status != models.UserStatusSuspended &&
		req.Status != models.UserStatusBanned {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid status: %q", req.Status))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, c.Param("user_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if req.Status == models.UserStatusSuspended {
		if req.Days == nil || *req.Days < 1 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("suspension duration ('days') required"))
			return
		}
		ends := time.Now().AddDate(0, 0, *req.Days)
		user.SuspensionEndsAt = &ends
	} else {
		user.SuspensionEndsAt = nil
	}

	user.Status = req.Status
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %d status changed to %s", user.ID, user.Status)
	utils.RespondJSON(c, http.StatusOK, "User status changed to "+req.Status, user)
}

// ChangeUserRole rejects anything outside the closed role set.
func (uc *UserController) ChangeUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.First(&user, c.Param("user_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	user.Role = role
	if err := uc.DB.Save(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User role changed to "+string(role), user)
}

// DeleteUser removes a user; reservations cascade with the account.
func (uc *UserController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := uc.DB.First(&user, c.Param("user_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	if err := uc.DB.Select("Reservations").Delete(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User deleted successfully", gin.H{"user_id": user.ID})
}

// CountUsersByRole
func (uc *UserController) CountUsersByRole(c *gin.Context) {
	var rows []struct {
		Role  string
		Count int64
	}
	if err := uc.DB.Model(&models.User{}).
		Select("role, count(id) as count").
		Group("role").
		Scan(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	result := map[string]int64{}
	for _, row := range rows {
		result[row.Role] = row.Count
	}
	utils.RespondJSON(c, http.StatusOK, "Users by role", result)
}

// CountUsersByStatus keeps keys for all three statuses even at zero.
func (uc *UserController) CountUsersByStatus(c *gin.Context) {
	var rows []struct {
		Status string
		Count  int64
	}
	if err := uc.DB.Model(&models.User{}).
		Select("status, count(id) as count").
		Where("status IN ?", []string{models.UserStatusActive, models.UserStatusSuspended, models.UserStatusBanned}).
		Group("status").
		Scan(&rows).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	result := map[string]int64{
		models.UserStatusActive:    0,
		models.UserStatusSuspended: 0,
		models.UserStatusBanned:    0,
	}
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	utils.RespondJSON(c, http.StatusOK, "Users by status", result)
}
