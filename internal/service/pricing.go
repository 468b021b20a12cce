package service

import (
	"fmt"

	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/shopspring/decimal"
)

var defaultUnitPrice = decimal.NewFromInt(10)

// priceTier covers quantities in [min, max]; max is inclusive.
type priceTier struct {
	min, max  int
	unitPrice decimal.Decimal
}

var priceTiers = []priceTier{
	{min: 1, max: 19, unitPrice: decimal.NewFromInt(10)},
	{min: 20, max: 49, unitPrice: decimal.NewFromInt(9)},
	{min: 50, max: 100, unitPrice: decimal.NewFromInt(8)},
}

// PriceFor returns the unit price for a quantity. Quantities outside every
// tier get the default rate.
func PriceFor(quantity int) decimal.Decimal {
	for _, t := range priceTiers {
		if quantity >= t.min && quantity <= t.max {
			return t.unitPrice
		}
	}
	return defaultUnitPrice
}

func NewOrder(quantity int) (*domain.Order, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, quantity)
	}
	unit := PriceFor(quantity)
	return &domain.Order{
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: unit.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}
