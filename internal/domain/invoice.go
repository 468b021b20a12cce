package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusActive    InvoiceStatus = "active"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusExpired   InvoiceStatus = "expired"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusNotFound  InvoiceStatus = "not_found"
	InvoiceStatusError     InvoiceStatus = "error"
)

// Invoice is the locally tracked view of a gateway invoice.
// OrderID is the payload the invoice was created with.
type Invoice struct {
	InvoiceID string
	OrderID   string
	PayURL    string
	CreatedAt time.Time
	Status    InvoiceStatus
}

// Checkout is an issued invoice together with the order it bills.
type Checkout struct {
	Order   *Order
	Invoice *Invoice
}
