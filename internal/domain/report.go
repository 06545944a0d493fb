package domain

import "github.com/shopspring/decimal"

// SettlementRow is one order item flattened across the
// OrderItem → Lot → Order joins.
type SettlementRow struct {
	SalesmanUsername string
	BuyerUsername    string
	Amount           int
	UnitPrice        decimal.Decimal
}

// SettlementEntry is the per-(salesman, buyer) revenue total.
type SettlementEntry struct {
	SalesmanUsername string          `json:"salesman_username"`
	BuyerUsername    string          `json:"buyer_username"`
	PriceSum         decimal.Decimal `json:"price_sum"`
}
