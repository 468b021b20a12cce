package domain

import (
	"sync"
	"time"
)

// Session is the per-chat checkout record. Callers must hold the lock
// across every read-decide-mutate sequence.
type Session struct {
	mu sync.Mutex

	ChatID           int64
	Order            *Order
	Invoice          *Invoice
	MessageID        int
	AwaitingQuantity bool
	UpdatedAt        time.Time
}

func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, UpdatedAt: time.Now()}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SetOrder replaces the order and drops any invoice bound to the previous one.
func (s *Session) SetOrder(order *Order) {
	s.Order = order
	s.Invoice = nil
	s.MessageID = 0
	s.AwaitingQuantity = false
	s.UpdatedAt = time.Now()
}

func (s *Session) SetInvoice(inv *Invoice) {
	s.Invoice = inv
	s.UpdatedAt = time.Now()
}

func (s *Session) SetDeliveryMessage(messageID int) {
	s.MessageID = messageID
	s.UpdatedAt = time.Now()
}

// ClearInvoice drops the invoice and its delivery message handle. The order
// is kept.
func (s *Session) ClearInvoice() {
	s.Invoice = nil
	s.MessageID = 0
	s.UpdatedAt = time.Now()
}

// Reset returns the session to the no-order state.
func (s *Session) Reset() {
	s.Order = nil
	s.AwaitingQuantity = false
	s.ClearInvoice()
}

// HoldsInvoice reports whether the session still tracks the given invoice id.
func (s *Session) HoldsInvoice(invoiceID string) bool {
	return s.Invoice != nil && s.Invoice.InvoiceID == invoiceID
}

// PaymentContextComplete reports whether every field a payment check needs
// is present.
func (s *Session) PaymentContextComplete() bool {
	return s.Order != nil &&
		s.Invoice != nil &&
		s.Invoice.InvoiceID != "" &&
		s.Invoice.OrderID != "" &&
		!s.Invoice.CreatedAt.IsZero() &&
		s.MessageID != 0
}
