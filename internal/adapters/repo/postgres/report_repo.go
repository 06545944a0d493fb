package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

type ReportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) *ReportRepo { return &ReportRepo{db: db} }

// SettlementRows flattens every order item across its lot, order and the
// two user rows. Summation stays in the usecase so the money math runs
// in fixed-point rather than whatever the database coerces the numeric
// column to.
func (r *ReportRepo) SettlementRows(ctx context.Context) ([]domain.SettlementRow, error) {
	rows := []domain.SettlementRow{}
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("sellers.username AS salesman_username, buyers.username AS buyer_username, order_items.amount AS amount, lots.unit_price AS unit_price").
		Joins("JOIN lots ON lots.id = order_items.lot_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN users AS sellers ON sellers.id = lots.salesman_id").
		Joins("JOIN users AS buyers ON buyers.id = orders.buyer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return rows, nil
}
