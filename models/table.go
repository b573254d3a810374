package models

import "time"

const (
	TableStatusAvailable = "available"
	TableStatusReserved  = "reserved"
	TableStatusOccupied  = "occupied"
)

func ValidTableStatus(s string) bool {
	switch s {
	case TableStatusAvailable, TableStatusReserved, TableStatusOccupied:
		return true
	}
	return false
}

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Number      int       `gorm:"unique;not null;index" json:"number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	Status      string    `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Reservations []Reservation `gorm:"foreignKey:TableID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
