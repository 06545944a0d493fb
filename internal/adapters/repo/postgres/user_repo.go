package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Save(ctx context.Context, u *domain.User) error {
	u.Username = strings.TrimSpace(u.Username)
	return wrapErr(r.db.WithContext(ctx).Save(u).Error)
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	name := strings.TrimSpace(username)
	if err := r.db.WithContext(ctx).First(&u, "username = ?", name).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}

// Delete removes the user; lots, orders and reviews hanging off the row
// go with it through the ON DELETE CASCADE constraints.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", id).Error)
}
