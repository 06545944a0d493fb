package usecase_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/floramart/flowerex/internal/app"
	"github.com/floramart/flowerex/internal/domain"
)

// newTestApp wires the real repositories against an in-memory SQLite
// database with foreign keys enforced, so cascade behavior matches the
// production schema.
func newTestApp(t *testing.T) *app.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or each pooled conn would see its own empty memory db
	sqlDB.SetMaxOpenConns(1)

	a := app.NewApp(db)
	require.NoError(t, a.Migrate())
	return a
}

func mkUser(t *testing.T, a *app.App, username string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{ID: uuid.New(), Username: username, Role: role}
	require.NoError(t, a.Users.Save(context.Background(), u))
	return u
}

func mkFlower(t *testing.T, a *app.App, name string) *domain.Flower {
	t.Helper()
	f, err := a.Catalog.CreateFlower(context.Background(), name, domain.ShadeWhite)
	require.NoError(t, err)
	return f
}

func mkLot(t *testing.T, a *app.App, salesman *domain.User, flower *domain.Flower, title string, amount int, price string) *domain.Lot {
	t.Helper()
	l, err := a.Catalog.CreateLot(context.Background(), salesman.ID, flower.ID, title, amount, decimal.RequireFromString(price))
	require.NoError(t, err)
	return l
}

func mkOrder(t *testing.T, a *app.App, buyer *domain.User, desc string) *domain.Order {
	t.Helper()
	o, err := a.Orders.Create(context.Background(), buyer.ID, desc)
	require.NoError(t, err)
	return o
}

func mkItem(t *testing.T, a *app.App, order *domain.Order, lot *domain.Lot, amount int) *domain.OrderItem {
	t.Helper()
	it, err := a.Orders.AddItem(context.Background(), order.ID, lot.ID, amount)
	require.NoError(t, err)
	return it
}
