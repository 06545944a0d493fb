package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/floramart/flowerex/internal/domain"
)

func TestSettlementGroupsByPair(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	vera := mkUser(t, a, "vera", domain.RoleSalesman)
	omar := mkUser(t, a, "omar", domain.RoleBuyer)
	rose := mkFlower(t, a, "rose")
	l := mkLot(t, a, vera, rose, "Red Roses", 40, "5.00")

	o := mkOrder(t, a, omar, "two batches")
	mkItem(t, a, o, l, 2)
	mkItem(t, a, o, l, 3)

	entries, err := a.Reports.Settlement(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1, "same pair collapses to one record")
	require.Equal(t, "vera", entries[0].SalesmanUsername)
	require.Equal(t, "omar", entries[0].BuyerUsername)
	require.Equal(t, "25.00", entries[0].PriceSum.StringFixed(2))
}

func TestSettlementEmpty(t *testing.T) {
	a := newTestApp(t)
	entries, err := a.Reports.Settlement(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSettlementSortedBySalesmanThenBuyer(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()
	vera := mkUser(t, a, "vera", domain.RoleSalesman)
	nils := mkUser(t, a, "nils", domain.RoleSalesman)
	omar := mkUser(t, a, "omar", domain.RoleBuyer)
	dina := mkUser(t, a, "dina", domain.RoleBuyer)
	rose := mkFlower(t, a, "rose")

	verasLot := mkLot(t, a, vera, rose, "Vera Roses", 40, "3.50")
	nilsLot := mkLot(t, a, nils, rose, "Nils Roses", 40, "2.00")

	omarsOrder := mkOrder(t, a, omar, "omar's")
	dinasOrder := mkOrder(t, a, dina, "dina's")
	mkItem(t, a, omarsOrder, verasLot, 2)  // vera/omar 7.00
	mkItem(t, a, dinasOrder, verasLot, 1)  // vera/dina 3.50
	mkItem(t, a, omarsOrder, nilsLot, 10)  // nils/omar 20.00
	mkItem(t, a, dinasOrder, nilsLot, 4)   // nils/dina 8.00

	entries, err := a.Reports.Settlement(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	want := []domain.SettlementEntry{
		{SalesmanUsername: "nils", BuyerUsername: "dina"},
		{SalesmanUsername: "nils", BuyerUsername: "omar"},
		{SalesmanUsername: "vera", BuyerUsername: "dina"},
		{SalesmanUsername: "vera", BuyerUsername: "omar"},
	}
	sums := []string{"8.00", "20.00", "3.50", "7.00"}
	for i, e := range entries {
		require.Equal(t, want[i].SalesmanUsername, e.SalesmanUsername)
		require.Equal(t, want[i].BuyerUsername, e.BuyerUsername)
		require.Equal(t, sums[i], e.PriceSum.StringFixed(2))
	}
}
