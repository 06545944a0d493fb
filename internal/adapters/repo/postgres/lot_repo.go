package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

type LotRepo struct{ db *gorm.DB }

func NewLotRepo(db *gorm.DB) *LotRepo { return &LotRepo{db: db} }

func (r *LotRepo) Save(ctx context.Context, l *domain.Lot) error {
	return wrapErr(r.db.WithContext(ctx).Omit("Flower").Save(l).Error)
}

func (r *LotRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Lot, error) {
	var l domain.Lot
	if err := r.db.WithContext(ctx).Preload("Flower").First(&l, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &l, nil
}

func (r *LotRepo) list(ctx context.Context, scope func(*gorm.DB) *gorm.DB, p domain.Page) ([]domain.Lot, int64, error) {
	q := scope(r.db.WithContext(ctx).Model(&domain.Lot{}))
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
	list := []domain.Lot{}
	err := q.Order("created_at desc").
		Offset((p.Page - 1) * p.PageSize).
		Limit(p.PageSize).
		Preload("Flower").
		Find(&list).Error
	if err != nil {
		return nil, 0, wrapErr(err)
	}
	return list, total, nil
}

func (r *LotRepo) ListPublic(ctx context.Context, p domain.Page) ([]domain.Lot, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("hide = ?", false)
	}, p)
}

func (r *LotRepo) ListBySalesman(ctx context.Context, salesmanID uuid.UUID, p domain.Page) ([]domain.Lot, int64, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("salesman_id = ?", salesmanID)
	}, p)
}

func (r *LotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&domain.Lot{}, "id = ?", id).Error)
}
