package models

import "time"

const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCanceled  = "canceled"
	ReservationStatusSeated    = "seated"
)

// reservationTransitions encodes the lifecycle: pending -> confirmed ->
// seated, with canceled reachable from pending or confirmed. Seated and
// canceled are terminal.
var reservationTransitions = map[string][]string{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCanceled},
	ReservationStatusConfirmed: {ReservationStatusSeated, ReservationStatusCanceled},
}

func ValidReservationTransition(from, to string) bool {
	for _, s := range reservationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed,
		ReservationStatusCanceled, ReservationStatusSeated:
		return true
	}
	return false
}

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TableID         uint      `gorm:"not null" json:"table_id"`
	Table           Table     `gorm:"foreignKey:TableID" json:"table,omitempty"`
	ReservationTime time.Time `gorm:"not null;index" json:"reservation_time"`
	Duration        int       `gorm:"not null;default:60" json:"duration"` // minutes
	Guests          int       `gorm:"not null" json:"guests"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// End returns the exclusive end of the reserved interval [start, end).
func (r *Reservation) End() time.Time {
	return r.ReservationTime.Add(time.Duration(r.Duration) * time.Minute)
}
