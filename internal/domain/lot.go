package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Lot is a salesman's batch of one flower variety at a unit price.
// URLs key off the UUID id, so the id type must stay a UUID.
type Lot struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SalesmanID uuid.UUID `gorm:"type:uuid;index" json:"salesman_id"`
	FlowerID   uuid.UUID `gorm:"type:uuid;index" json:"flower_id"`
	Flower     Flower    `json:"flower"`
	Title      string          `gorm:"size:120" json:"title"`
	Slug       string          `gorm:"size:200;index" json:"slug"`
	Amount     int             `gorm:"not null" json:"amount"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Hide       bool            `gorm:"not null;default:true" json:"hide"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Reviews    []LotReview `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MakeSlug derives the URL slug from a lot title. Every save recomputes
// the slug from the current title.
func MakeSlug(title string) string {
	return slug.Make(title)
}
