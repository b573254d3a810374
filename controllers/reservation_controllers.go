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

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:      db,
		Service: services.NewReservationService(db),
	}
}

// CreateReservation books a table for the authenticated user.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		TableID         uint       `json:"table_id" binding:"required"`
		ReservationTime *time.Time `json:"reservation_time" binding:"required"`
		Duration        *int       `json:"duration"`
		Guests          int        `json:"guests" binding:"required,min=1"`
		SpecialRequests string     `json:"special_requests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	duration := 60
	if req.Duration != nil {
		duration = *req.Duration
	}

	reservation, err := rc.Service.Book(services.BookingRequest{
		UserID:          c.GetUint("user_id"),
		TableID:         req.TableID,
		ReservationTime: *req.ReservationTime,
		Duration:        duration,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created for table %d at %s",
		reservation.ID, reservation.TableID, reservation.ReservationTime.Format(time.RFC3339))
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetAllReservations supports status, user and date filters.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Preload("User").Preload("Table")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid date format"))
			return
		}
		query = query.Where("reservation_time >= ? AND reservation_time < ?", date, date.AddDate(0, 0, 1))
	}

	var reservations []models.Reservation
	if err := query.Order("reservation_time asc").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.Preload("User").Preload("Table").First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation applies a partial update; time or duration changes
// re-run the availability check against every other reservation.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var req struct {
		ReservationTime *time.Time `json:"reservation_time"`
		Duration        *int       `json:"duration"`
		Guests          *int       `json:"guests"`
		Status          *string    `json:"status"`
		SpecialRequests *string    `json:"special_requests"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	updated, err := rc.Service.Update(reservation.ID, services.ReservationUpdate{
		ReservationTime: req.ReservationTime,
		Duration:        req.Duration,
		Guests:          req.Guests,
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", updated)
}

// UpdateReservationStatus -> admin shortcut, no availability re-check.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	updated, err := rc.Service.UpdateStatus(reservation.ID, req.Status)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", updated)
}

// DeleteReservation
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("reservation not found"))
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"reservation_id": reservation.ID})
}

// CheckAvailability answers the slot question without booking anything.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	var req struct {
		TableID         uint       `json:"table_id" binding:"required"`
		ReservationTime *time.Time `json:"reservation_time" binding:"required"`
		Duration        *int       `json:"duration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	duration := 60
	if req.Duration != nil {
		duration = *req.Duration
	}

	available, err := rc.Service.IsTableAvailable(rc.DB, req.TableID, *req.ReservationTime, duration, nil)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Availability checked", gin.H{"available": available})
}

// GetUpcomingReservations lists reservations from now onward.
func (rc *ReservationController) GetUpcomingReservations(c *gin.Context) {
	query := rc.DB.Preload("Table").Where("reservation_time >= ?", time.Now())
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var reservations []models.Reservation
	if err := query.Order("reservation_time asc").Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Upcoming reservations", reservations)
}
