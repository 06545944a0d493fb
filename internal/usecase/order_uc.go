package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/floramart/flowerex/internal/domain"
)

type OrderUC struct {
	Users  domain.UserRepo
	Lots   domain.LotRepo
	Orders domain.OrderRepo
}

// Create validates the buyer role and persists an unpaid order.
func (uc *OrderUC) Create(ctx context.Context, buyerID uuid.UUID, description string) (*domain.Order, error) {
	buyer, err := uc.Users.FindByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireRole(buyer, domain.RoleBuyer); err != nil {
		return nil, err
	}
	o := &domain.Order{
		ID:          uuid.New(),
		BuyerID:     buyer.ID,
		Description: description,
		Paid:        false,
	}
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *OrderUC) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return uc.Orders.FindByID(ctx, id)
}

// AddItem attaches a quantity of a lot to an existing order.
func (uc *OrderUC) AddItem(ctx context.Context, orderID, lotID uuid.UUID, amount int) (*domain.OrderItem, error) {
	if amount <= 0 {
		return nil, &domain.ValidationError{Reason: "item amount must be positive"}
	}
	if _, err := uc.Orders.FindByID(ctx, orderID); err != nil {
		return nil, err
	}
	lot, err := uc.Lots.FindByID(ctx, lotID)
	if err != nil {
		return nil, err
	}
	it := &domain.OrderItem{
		ID:      uuid.New(),
		OrderID: orderID,
		LotID:   lot.ID,
		Amount:  amount,
	}
	if err := uc.Orders.SaveItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// GetTotalCost sums amount × unit price over the order's items in exact
// fixed-point. An order with no items totals zero.
func (uc *OrderUC) GetTotalCost(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	o, err := uc.Orders.FindByID(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Cost())
	}
	return total, nil
}

// MarkPaid flips the paid flag.
func (uc *OrderUC) MarkPaid(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Paid = true
	if err := uc.Orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// OrdersByBuyer lists a buyer's orders, newest first.
func (uc *OrderUC) OrdersByBuyer(ctx context.Context, buyerID uuid.UUID, p domain.Page) ([]domain.Order, int64, error) {
	return uc.Orders.ListByBuyer(ctx, buyerID, p)
}

// SalesBySalesman lists order items sold through the salesman's lots.
func (uc *OrderUC) SalesBySalesman(ctx context.Context, salesmanID uuid.UUID, p domain.Page) ([]domain.OrderItem, int64, error) {
	return uc.Orders.ListItemsBySalesman(ctx, salesmanID, p)
}
