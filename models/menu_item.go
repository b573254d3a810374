package models

import "time"

type MenuItem struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Name            string       `gorm:"type:varchar(100);not null;index" json:"name"`
	Description     string       `gorm:"type:text" json:"description"`
	Price           float64      `gorm:"type:decimal(10,2);not null" json:"price"`
	CostPrice       *float64     `gorm:"type:decimal(10,2)" json:"cost_price,omitempty"`
	CategoryID      uint         `gorm:"not null" json:"category_id"`
	Category        MenuCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	PreparationTime int          `gorm:"not null;default:15" json:"preparation_time"` // minutes
	// No database default: a gorm default on a plain bool would swallow
	// an explicit false on insert. The create path sets the flag.
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
