package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/floramart/flowerex/internal/domain"
)

type CatalogUC struct {
	Users   domain.UserRepo
	Flowers domain.FlowerRepo
	Lots    domain.LotRepo
}

func (uc *CatalogUC) CreateFlower(ctx context.Context, name string, shade domain.Shade) (*domain.Flower, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &domain.ValidationError{Reason: "flower name is empty"}
	}
	f := &domain.Flower{ID: uuid.New(), Name: name, Shade: shade}
	if err := uc.Flowers.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *CatalogUC) GetFlower(ctx context.Context, id uuid.UUID) (*domain.Flower, error) {
	return uc.Flowers.FindByID(ctx, id)
}

func (uc *CatalogUC) ListFlowers(ctx context.Context) ([]domain.Flower, error) {
	return uc.Flowers.List(ctx)
}

// DeleteFlower removes a flower and, through the store's cascade, every
// lot listed under it.
func (uc *CatalogUC) DeleteFlower(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Flowers.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Flowers.Delete(ctx, id)
}

// CreateLot validates the salesman role and the flower reference, then
// persists a hidden lot with a fresh UUID and a slug derived from the
// title.
func (uc *CatalogUC) CreateLot(ctx context.Context, salesmanID, flowerID uuid.UUID, title string, amount int, unitPrice decimal.Decimal) (*domain.Lot, error) {
	salesman, err := uc.Users.FindByID(ctx, salesmanID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireRole(salesman, domain.RoleSalesman); err != nil {
		return nil, err
	}
	if _, err := uc.Flowers.FindByID(ctx, flowerID); err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, &domain.ValidationError{Reason: "lot amount cannot be negative"}
	}
	l := &domain.Lot{
		ID:         uuid.New(),
		SalesmanID: salesman.ID,
		FlowerID:   flowerID,
		Title:      title,
		Slug:       domain.MakeSlug(title),
		Amount:     amount,
		UnitPrice:  unitPrice,
		Hide:       true,
	}
	if err := uc.Lots.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// LotPatch is the writable subset of a lot. Nil fields are left alone.
type LotPatch struct {
	Title  *string
	Amount *int
	Hide   *bool
}

// UpdateLot applies the patch and recomputes the slug from the current
// title on every save.
func (uc *CatalogUC) UpdateLot(ctx context.Context, id uuid.UUID, patch LotPatch) (*domain.Lot, error) {
	l, err := uc.Lots.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		l.Title = *patch.Title
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, &domain.ValidationError{Reason: "lot amount cannot be negative"}
		}
		l.Amount = *patch.Amount
	}
	if patch.Hide != nil {
		l.Hide = *patch.Hide
	}
	l.Slug = domain.MakeSlug(l.Title)
	if err := uc.Lots.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *CatalogUC) GetLot(ctx context.Context, id uuid.UUID) (*domain.Lot, error) {
	return uc.Lots.FindByID(ctx, id)
}

// PublicCatalog lists visible lots, newest first.
func (uc *CatalogUC) PublicCatalog(ctx context.Context, p domain.Page) ([]domain.Lot, int64, error) {
	return uc.Lots.ListPublic(ctx, p)
}

// LotsBySalesman lists a salesman's own lots, hidden ones included.
func (uc *CatalogUC) LotsBySalesman(ctx context.Context, salesmanID uuid.UUID, p domain.Page) ([]domain.Lot, int64, error) {
	return uc.Lots.ListBySalesman(ctx, salesmanID, p)
}

// DeleteLot removes a lot and, through the store's cascade, its order
// items and reviews.
func (uc *CatalogUC) DeleteLot(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.Lots.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Lots.Delete(ctx, id)
}
