package domain

import (
	"context"

	"github.com/google/uuid"
)

// Page is a 1-based page request for the list views.
type Page struct {
	Page     int
	PageSize int
}

type UserRepo interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FlowerRepo interface {
	Save(ctx context.Context, f *Flower) error
	FindByID(ctx context.Context, id uuid.UUID) (*Flower, error)
	List(ctx context.Context) ([]Flower, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LotRepo interface {
	Save(ctx context.Context, l *Lot) error
	// FindByID loads the lot with its Flower eagerly joined.
	FindByID(ctx context.Context, id uuid.UUID) (*Lot, error)
	ListPublic(ctx context.Context, p Page) ([]Lot, int64, error)
	ListBySalesman(ctx context.Context, salesmanID uuid.UUID, p Page) ([]Lot, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepo interface {
	Save(ctx context.Context, o *Order) error
	// FindByID loads the order with its items and their lots.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, p Page) ([]Order, int64, error)
	SaveItem(ctx context.Context, it *OrderItem) error
	// ListItemsBySalesman returns order items sold through lots owned by
	// the salesman, lots included.
	ListItemsBySalesman(ctx context.Context, salesmanID uuid.UUID, p Page) ([]OrderItem, int64, error)
}

type ReviewRepo interface {
	SaveLotReview(ctx context.Context, r *LotReview) error
	SaveSalesmanReview(ctx context.Context, r *SalesmanReview) error
	ListForLot(ctx context.Context, lotID uuid.UUID) ([]LotReview, error)
	ListForSalesman(ctx context.Context, salesmanID uuid.UUID) ([]SalesmanReview, error)
}

type ReportRepo interface {
	// SettlementRows returns one row per order item joined to its lot,
	// order and both usernames. Grouping happens in the usecase.
	SettlementRows(ctx context.Context) ([]SettlementRow, error)
}
