package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) SaveLotReview(ctx context.Context, rev *domain.LotReview) error {
	return wrapErr(r.db.WithContext(ctx).Omit("User").Save(rev).Error)
}

func (r *ReviewRepo) SaveSalesmanReview(ctx context.Context, rev *domain.SalesmanReview) error {
	return wrapErr(r.db.WithContext(ctx).Omit("User", "Salesman").Save(rev).Error)
}

func (r *ReviewRepo) ListForLot(ctx context.Context, lotID uuid.UUID) ([]domain.LotReview, error) {
	list := []domain.LotReview{}
	err := r.db.WithContext(ctx).
		Where("lot_id = ?", lotID).
		Order("created_at desc").
		Preload("User").
		Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (r *ReviewRepo) ListForSalesman(ctx context.Context, salesmanID uuid.UUID) ([]domain.SalesmanReview, error) {
	list := []domain.SalesmanReview{}
	err := r.db.WithContext(ctx).
		Where("salesman_id = ?", salesmanID).
		Order("created_at desc").
		Preload("User").
		Find(&list).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}
