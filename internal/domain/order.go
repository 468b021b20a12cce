package domain

import "github.com/shopspring/decimal"

// Order is immutable once created; a new pack selection replaces it.
type Order struct {
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
