package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	return wrapErr(r.db.WithContext(ctx).Omit("Items").Save(o).Error)
}

func (r *OrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Lot").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return &o, nil
}

func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, p domain.Page) ([]domain.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{}).Where("buyer_id = ?", buyerID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err)
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	list := []domain.Order{}
	err := q.Order("created_at desc").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Preload("Items").
		Preload("Items.Lot").
		Find(&list).Error
	if err != nil {
		return nil, 0, wrapErr(err)
	}
	return list, total, nil
}

func (r *OrderRepo) SaveItem(ctx context.Context, it *domain.OrderItem) error {
	return wrapErr(r.db.WithContext(ctx).Omit("Lot").Save(it).Error)
}

// ListItemsBySalesman joins items to their lots and keeps the ones whose
// lot belongs to the salesman.
func (r *OrderRepo) ListItemsBySalesman(ctx context.Context, salesmanID uuid.UUID, p domain.Page) ([]domain.OrderItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.OrderItem{}).
		Joins("JOIN lots ON lots.id = order_items.lot_id").
		Where("lots.salesman_id = ?", salesmanID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, wrapErr(err)
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	list := []domain.OrderItem{}
	err := q.Order("order_items.amount desc").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Preload("Lot").
		Find(&list).Error
	if err != nil {
		return nil, 0, wrapErr(err)
	}
	return list, total, nil
}
