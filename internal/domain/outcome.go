package domain

import "time"

type OutcomeKind string

const (
	OutcomePaid      OutcomeKind = "paid"
	OutcomePending   OutcomeKind = "pending"
	OutcomeExpired   OutcomeKind = "expired"
	OutcomeCancelled OutcomeKind = "cancelled"
	OutcomeNotFound  OutcomeKind = "not_found"
	OutcomeError     OutcomeKind = "error"
	OutcomeNoPayment OutcomeKind = "no_payment"
)

// Terminal reports whether the outcome ends the invoice lifecycle.
func (k OutcomeKind) Terminal() bool {
	return k != OutcomePending
}

// Outcome is what a payment check or the expiry watchdog reports to the user.
type Outcome struct {
	Kind        OutcomeKind
	ChatID      int64
	OrderID     string
	InvoiceID   string
	Order       *Order
	Credentials []Credential
	ResolvedAt  time.Time
	// Err is the failure behind OutcomeError and OutcomeNoPayment.
	Err error
}
