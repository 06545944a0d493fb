package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/floramart/flowerex/internal/domain"
)

type ReportUC struct {
	Report domain.ReportRepo
}

// Settlement groups every order item by (salesman, buyer) and totals
// amount × unit price per pair. Accumulation is fixed-point decimal;
// the result is sorted by salesman then buyer username so callers get a
// stable order.
func (uc *ReportUC) Settlement(ctx context.Context) ([]domain.SettlementEntry, error) {
	rows, err := uc.Report.SettlementRows(ctx)
	if err != nil {
		return nil, err
	}

	type pair struct{ salesman, buyer string }
	sums := make(map[pair]decimal.Decimal)
	for _, row := range rows {
		k := pair{row.SalesmanUsername, row.BuyerUsername}
		cost := row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Amount)))
		sums[k] = sums[k].Add(cost)
	}

	entries := make([]domain.SettlementEntry, 0, len(sums))
	for k, sum := range sums {
		entries = append(entries, domain.SettlementEntry{
			SalesmanUsername: k.salesman,
			BuyerUsername:    k.buyer,
			PriceSum:         sum,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SalesmanUsername != entries[j].SalesmanUsername {
			return entries[i].SalesmanUsername < entries[j].SalesmanUsername
		}
		return entries[i].BuyerUsername < entries[j].BuyerUsername
	})
	return entries, nil
}
