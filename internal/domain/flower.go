package domain

import (
	"time"

	"github.com/google/uuid"
)

type Shade string

const (
	ShadeUnset Shade = ""
	ShadeWhite Shade = "white"
	ShadeBlack Shade = "black"
	ShadeBlue  Shade = "blue"
	ShadeGreen Shade = "green"
)

// Flower is a taxonomy entry lots are listed under.
type Flower struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"size:120;not null" json:"name"`
	Shade Shade     `gorm:"type:varchar(10)" json:"shade"`

	Lots []Lot `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
