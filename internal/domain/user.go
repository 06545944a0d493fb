package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role separates users and restricts which writes each side may perform.
type Role string

const (
	RoleUnset    Role = ""
	RoleSalesman Role = "salesman"
	RoleBuyer    Role = "buyer"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"size:140;uniqueIndex" json:"username"`
	Role     Role      `gorm:"type:varchar(20);index" json:"role"`

	Lots   []Lot   `gorm:"foreignKey:SalesmanID;constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// RequireRole checks the role gate before a write that depends on it.
// A user with no role assigned fails both checks.
func RequireRole(u *User, want Role) error {
	if u == nil {
		return ErrNotFound
	}
	if u.Role == want {
		return nil
	}
	switch want {
	case RoleSalesman:
		return &ValidationError{Reason: "buyer cannot make lots"}
	case RoleBuyer:
		return &ValidationError{Reason: "salesman can't place orders"}
	}
	return &ValidationError{Reason: "user has no role assigned"}
}
