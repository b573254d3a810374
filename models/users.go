package models

import (
	"fmt"
	"time"
)

// Role is a closed set. Unknown values are rejected at the boundary
// instead of being stored as free-form strings.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleWaiter   Role = "WAITER"
	RoleChef     Role = "CHEF"
	RoleCashier  Role = "CASHIER"
	RoleAdmin    Role = "ADMIN"
)

// roleRank defines the total order used for promotion/demotion checks.
var roleRank = map[Role]int{
	RoleCustomer: 0,
	RoleWaiter:   1,
	RoleChef:     2,
	RoleCashier:  3,
	RoleAdmin:    4,
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return r, nil
}

// Outranks reports whether r sits strictly above other in the role order.
func (r Role) Outranks(other Role) bool {
	return roleRank[r] > roleRank[other]
}

const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusBanned    = "banned"
)

type User struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	FullName         string     `gorm:"type:varchar(150);not null" json:"full_name"`
	Email            string     `gorm:"type:varchar(150);unique;not null;index" json:"email"`
	PasswordHash     *string    `gorm:"type:varchar(256)" json:"-"`
	Role             Role       `gorm:"type:varchar(20);not null;default:'CUSTOMER'" json:"role"`
	AvatarURL        string     `gorm:"type:varchar(255);default:'/static/avatars/default.png'" json:"avatar_url"`
	Status           string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	SuspensionEndsAt *time.Time `json:"suspension_ends_at,omitempty"`
	IsFederated      bool       `gorm:"default:false" json:"is_federated"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`

	Reservations []Reservation `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
