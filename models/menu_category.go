package models

import "time"

type MenuCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	ParentID     *uint     `json:"parent_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`

	Children  []MenuCategory `gorm:"foreignKey:ParentID" json:"subcategories,omitempty"`
	MenuItems []MenuItem     `gorm:"foreignKey:CategoryID" json:"menu_items,omitempty"`
}
