package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxReviewLen caps the free-text body of both review kinds.
const MaxReviewLen = 2000

// LotReview is free-text feedback on a lot.
type LotReview struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User    User      `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	LotID   uuid.UUID `gorm:"type:uuid;index" json:"lot_id"`
	Context string    `gorm:"size:2000" json:"context"`

	CreatedAt time.Time `json:"created_at"`
}

// SalesmanReview is free-text feedback on a salesman.
type SalesmanReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	SalesmanID uuid.UUID `gorm:"type:uuid;index" json:"salesman_id"`
	Salesman   User      `gorm:"foreignKey:SalesmanID;constraint:OnDelete:CASCADE" json:"-"`
	Context    string    `gorm:"size:2000" json:"context"`

	CreatedAt time.Time `json:"created_at"`
}
