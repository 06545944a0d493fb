package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/floramart/flowerex/internal/domain"
)

func TestRequireRole(t *testing.T) {
	salesman := &domain.User{Username: "vera", Role: domain.RoleSalesman}
	buyer := &domain.User{Username: "omar", Role: domain.RoleBuyer}
	nobody := &domain.User{Username: "kim"}

	t.Run("matching role passes", func(t *testing.T) {
		require.NoError(t, domain.RequireRole(salesman, domain.RoleSalesman))
		require.NoError(t, domain.RequireRole(buyer, domain.RoleBuyer))
	})

	t.Run("buyer cannot act as salesman", func(t *testing.T) {
		err := domain.RequireRole(buyer, domain.RoleSalesman)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "buyer cannot make lots", ve.Reason)
	})

	t.Run("salesman cannot act as buyer", func(t *testing.T) {
		err := domain.RequireRole(salesman, domain.RoleBuyer)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "salesman can't place orders", ve.Reason)
	})

	t.Run("unset role fails both checks", func(t *testing.T) {
		var ve *domain.ValidationError
		require.ErrorAs(t, domain.RequireRole(nobody, domain.RoleSalesman), &ve)
		require.ErrorAs(t, domain.RequireRole(nobody, domain.RoleBuyer), &ve)
	})

	t.Run("nil user is not found", func(t *testing.T) {
		require.True(t, errors.Is(domain.RequireRole(nil, domain.RoleBuyer), domain.ErrNotFound))
	})
}

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Red Roses", "red-roses"},
		{"  Fresh   Tulips  ", "fresh-tulips"},
		{"100 White Lilies!", "100-white-lilies"},
		{"Orchidée Blanche", "orchidee-blanche"},
		{"UPPER case TITLE", "upper-case-title"},
	}
	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			require.Equal(t, tc.want, domain.MakeSlug(tc.title))
		})
	}
}

func TestOrderItemCost(t *testing.T) {
	it := domain.OrderItem{
		Amount: 3,
		Lot:    domain.Lot{UnitPrice: decimal.RequireFromString("3.50")},
	}
	require.True(t, it.Cost().Equal(decimal.RequireFromString("10.50")), "got %s", it.Cost())
}
