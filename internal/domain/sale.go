package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a paid order as written to the sales ledger.
type Sale struct {
	ChatID     int64
	OrderID    string
	InvoiceID  string
	Quantity   int
	TotalPrice decimal.Decimal
	PaidAt     time.Time
}
