package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

type FlowerRepo struct{ db *gorm.DB }

func NewFlowerRepo(db *gorm.DB) *FlowerRepo { return &FlowerRepo{db: db} }

func (r *FlowerRepo) Save(ctx context.Context, f *domain.Flower) error {
	return wrapErr(r.db.WithContext(ctx).Save(f).Error)
}

func (r *FlowerRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Flower, error) {
	var f domain.Flower
	if err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &f, nil
}

func (r *FlowerRepo) List(ctx context.Context) ([]domain.Flower, error) {
	list := []domain.Flower{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, wrapErr(err)
	}
	return list, nil
}

func (r *FlowerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&domain.Flower{}, "id = ?", id).Error)
}
