package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BuyerID     uuid.UUID `gorm:"type:uuid;index" json:"buyer_id"`
	Description string    `gorm:"type:text" json:"description"`
	Paid        bool      `gorm:"not null;default:false" json:"paid"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a quantity of one lot attached to one order.
type OrderItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID uuid.UUID `gorm:"type:uuid;index" json:"order_id"`
	LotID   uuid.UUID `gorm:"type:uuid;index" json:"lot_id"`
	Lot     Lot       `json:"lot"`
	Amount  int `gorm:"not null" json:"amount"`
}

// Cost is amount × the lot's unit price. The Lot association must be
// loaded before calling.
func (it OrderItem) Cost() decimal.Decimal {
	return it.Lot.UnitPrice.Mul(decimal.NewFromInt(int64(it.Amount)))
}
