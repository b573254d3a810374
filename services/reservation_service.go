package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dinesync/restaurant-api/models"
	"github.com/dinesync/restaurant-api/utils"
)

// ReservationService owns booking validation: the overlap check, the
// guests-vs-capacity rule and the lifecycle transitions. All writes run
// inside a transaction that locks the table row first, so two concurrent
// bookings for the same slot serialize and exactly one of them wins.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

type BookingRequest struct {
	UserID          uint
	TableID         uint
	ReservationTime time.Time
	Duration        int
	Guests          int
	SpecialRequests string
}

type ReservationUpdate struct {
	ReservationTime *time.Time
	Duration        *int
	Guests          *int
	Status          *string
	SpecialRequests *string
}

// IsTableAvailable reports whether the half-open interval
// [start, start+duration) is free on the given table. Only pending and
// confirmed reservations block a slot; canceled and seated ones do not.
// Both comparisons are strict, so a booking that starts exactly when
// another ends is legal.
func (s *ReservationService) IsTableAvailable(tx *gorm.DB, tableID uint, start time.Time, duration int, excludeID *uint) (bool, error) {
	if duration < 1 {
		return false, utils.NewValidationError("duration must be a positive number of minutes")
	}

	end := start.Add(time.Duration(duration) * time.Minute)

	query := tx.Where("table_id = ?", tableID).
		Where("status IN ?", []string{models.ReservationStatusPending, models.ReservationStatusConfirmed}).
		Where("reservation_time < ?", end)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var candidates []models.Reservation
	if err := query.Find(&candidates).Error; err != nil {
		return false, err
	}

	for _, r := range candidates {
		if r.End().After(start) {
			return false, nil
		}
	}
	return true, nil
}

// Book validates and persists a new pending reservation. The check and
// the insert share one transaction keyed by a lock on the table row;
// without it two requests could both pass the availability check before
// either commits.
func (s *ReservationService) Book(req BookingRequest) (*models.Reservation, error) {
	if req.ReservationTime.IsZero() {
		return nil, utils.NewValidationError("reservation must include a reservation_time")
	}
	if req.Duration < 1 {
		return nil, utils.NewValidationError("duration must be a positive number of minutes")
	}
	if req.Guests < 1 {
		return nil, utils.NewValidationError("guests must be at least 1")
	}

	var reservation models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		table, err := s.lockTable(tx, req.TableID)
		if err != nil {
			return err
		}

		if req.Guests > table.Capacity {
			return utils.NewValidationError(fmt.Sprintf("exceeds table capacity (%d)", table.Capacity))
		}

		available, err := s.IsTableAvailable(tx, req.TableID, req.ReservationTime, req.Duration, nil)
		if err != nil {
			return err
		}
		if !available {
			return utils.NewConflictError("table already booked for this time slot")
		}

		reservation = models.Reservation{
			UserID:          req.UserID,
			TableID:         req.TableID,
			ReservationTime: req.ReservationTime,
			Duration:        req.Duration,
			Guests:          req.Guests,
			Status:          models.ReservationStatusPending,
			SpecialRequests: req.SpecialRequests,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Update applies a partial update. The availability check re-runs only
// when the time or duration actually changes, excluding the reservation
// itself; an update that just edits special_requests never touches it.
func (s *ReservationService) Update(reservationID uint, upd ReservationUpdate) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, reservationID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NewNotFoundError("reservation not found")
			}
			return err
		}

		timeChanged := false
		if upd.ReservationTime != nil && !upd.ReservationTime.Equal(reservation.ReservationTime) {
			reservation.ReservationTime = *upd.ReservationTime
			timeChanged = true
		}
		if upd.Duration != nil && *upd.Duration != reservation.Duration {
			if *upd.Duration < 1 {
				return utils.NewValidationError("duration must be a positive number of minutes")
			}
			reservation.Duration = *upd.Duration
			timeChanged = true
		}

		if timeChanged {
			if _, err := s.lockTable(tx, reservation.TableID); err != nil {
				return err
			}
			available, err := s.IsTableAvailable(tx, reservation.TableID,
				reservation.ReservationTime, reservation.Duration, &reservation.ID)
			if err != nil {
				return err
			}
			if !available {
				return utils.NewConflictError("table not available at the new time")
			}
		}

		if upd.Guests != nil {
			var table models.Table
			if err := tx.First(&table, reservation.TableID).Error; err != nil {
				return err
			}
			if *upd.Guests > table.Capacity {
				return utils.NewValidationError(fmt.Sprintf("exceeds table capacity (%d)", table.Capacity))
			}
			reservation.Guests = *upd.Guests
		}

		if upd.Status != nil && *upd.Status != reservation.Status {
			if !models.ValidReservationTransition(reservation.Status, *upd.Status) {
				return utils.NewValidationError(fmt.Sprintf("cannot transition reservation from %s to %s",
					reservation.Status, *upd.Status))
			}
			reservation.Status = *upd.Status
		}

		if upd.SpecialRequests != nil {
			reservation.SpecialRequests = *upd.SpecialRequests
		}

		return tx.Save(&reservation).Error
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateStatus sets the status directly without re-checking availability.
// Administrators only confirm or seat bookings that were validated when
// they were created, so the slot check is deliberately skipped here.
func (s *ReservationService) UpdateStatus(reservationID uint, status string) (*models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown reservation status: %q", status))
	}

	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("reservation not found")
		}
		return nil, err
	}

	if status != reservation.Status {
		if !models.ValidReservationTransition(reservation.Status, status) {
			return nil, utils.NewValidationError(fmt.Sprintf("cannot transition reservation from %s to %s",
				reservation.Status, status))
		}
		reservation.Status = status
		if err := s.db.Save(&reservation).Error; err != nil {
			return nil, err
		}
	}
	return &reservation, nil
}

// lockTable takes a row lock on the table so concurrent bookings for the
// same table serialize. SQLite has no FOR UPDATE; its single writer
// already gives the same guarantee, so the clause is skipped there.
func (s *ReservationService) lockTable(tx *gorm.DB, tableID uint) (*models.Table, error) {
	var table models.Table
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.First(&table, tableID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NewNotFoundError("table not found")
		}
		return nil, err
	}
	return &table, nil
}
