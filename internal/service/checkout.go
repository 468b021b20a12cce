package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/metrics"
)

// Notifier delivers checkout results to the chat front-end.
type Notifier interface {
	DeliverOutcome(ctx context.Context, outcome *domain.Outcome) error
	RetractMessage(ctx context.Context, chatID int64, messageID int) error
}

// SalesLedger records paid orders.
type SalesLedger interface {
	RecordSale(ctx context.Context, sale *domain.Sale) error
}

const (
	sourceManual   = "manual"
	sourceWatchdog = "watchdog"
)

// CheckoutService drives an order from pack selection to a resolved invoice.
// Every read-decide-mutate sequence on a session runs under that session's
// lock; invoice resolution is at most once per invoice id.
type CheckoutService struct {
	sessions   *SessionStore
	gateway    InvoiceGateway
	notifier   Notifier
	scheduler  Scheduler
	sales      SalesLedger
	asset      string
	invoiceTTL time.Duration
}

type CheckoutDeps struct {
	Sessions  *SessionStore
	Gateway   InvoiceGateway
	Notifier  Notifier
	Scheduler Scheduler
	Sales     SalesLedger
	Asset     string
	// InvoiceTTL defaults to config.InvoiceTTL.
	InvoiceTTL time.Duration
}

func NewCheckoutService(deps CheckoutDeps) *CheckoutService {
	ttl := deps.InvoiceTTL
	if ttl <= 0 {
		ttl = config.InvoiceTTL
	}
	return &CheckoutService{
		sessions:   deps.Sessions,
		gateway:    deps.Gateway,
		notifier:   deps.Notifier,
		scheduler:  deps.Scheduler,
		sales:      deps.Sales,
		asset:      deps.Asset,
		invoiceTTL: ttl,
	}
}

// SelectPack replaces the chat's order. An invoice issued for a previous
// order is dropped and its message retracted; its watchdog will find itself
// superseded.
func (c *CheckoutService) SelectPack(ctx context.Context, chatID int64, quantity int) (*domain.Order, error) {
	order, err := NewOrder(quantity)
	if err != nil {
		return nil, err
	}

	session := c.sessions.Get(chatID)
	session.Lock()
	if session.Invoice != nil {
		slog.Info("discarding unresolved invoice", "chat_id", chatID, "invoice_id", session.Invoice.InvoiceID)
	}
	messageID := session.MessageID
	session.SetOrder(order)
	session.Unlock()

	c.retract(ctx, chatID, messageID)

	slog.Info("order selected", "chat_id", chatID, "quantity", order.Quantity, "total", order.TotalPrice.String())
	return order, nil
}

// AwaitCustomQuantity marks the chat as expected to type a quantity next.
func (c *CheckoutService) AwaitCustomQuantity(chatID int64) {
	session := c.sessions.Get(chatID)
	session.Lock()
	session.AwaitingQuantity = true
	session.Unlock()
}

// TakeAwaitingQuantity reports and clears the custom quantity prompt flag.
func (c *CheckoutService) TakeAwaitingQuantity(chatID int64) bool {
	session := c.sessions.Get(chatID)
	session.Lock()
	defer session.Unlock()
	awaiting := session.AwaitingQuantity
	session.AwaitingQuantity = false
	return awaiting
}

// ChooseCryptoPay issues an invoice for the current order and schedules its
// expiry watchdog. messageID is the message that will show the invoice; it
// may be replaced later with AttachDeliveryMessage. On gateway failure the
// session is left untouched and the call may be retried.
func (c *CheckoutService) ChooseCryptoPay(ctx context.Context, chatID int64, messageID int) (*domain.Checkout, error) {
	session := c.sessions.Get(chatID)
	session.Lock()

	order := session.Order
	if order == nil {
		session.Unlock()
		return nil, domain.ErrNoActiveOrder
	}

	orderID := GenerateOrderID()
	description := fmt.Sprintf("%s x%d", config.ProductName, order.Quantity)

	inv, err := c.gateway.CreateInvoice(ctx, order.TotalPrice, description, orderID)
	if err != nil {
		metrics.IncInvoiceCreated("gateway_error")
		var gwErr *domain.GatewayError
		if !errors.As(err, &gwErr) {
			err = &domain.GatewayError{Reason: err.Error(), Err: err}
		}
		session.Unlock()
		slog.Error("create invoice", "chat_id", chatID, "order_id", orderID, "error", err)
		return nil, err
	}
	metrics.IncInvoiceCreated("ok")

	inv.OrderID = orderID
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}

	// A still live invoice is superseded; its message goes with it.
	var supersededMessage int
	if session.Invoice != nil {
		slog.Info("superseding unresolved invoice", "chat_id", chatID, "invoice_id", session.Invoice.InvoiceID)
		if session.MessageID != messageID {
			supersededMessage = session.MessageID
		}
	}
	session.SetInvoice(inv)
	session.SetDeliveryMessage(messageID)

	job := NewWatchdogJob(chatID, inv.InvoiceID)
	c.scheduler.Schedule(c.invoiceTTL, job, c.runWatchdog)
	invCopy := *inv
	session.Unlock()

	c.retract(ctx, chatID, supersededMessage)

	slog.Info("invoice issued",
		"chat_id", chatID,
		"order_id", orderID,
		"invoice_id", inv.InvoiceID,
		"watchdog_id", job.ID,
	)

	return &domain.Checkout{Order: order, Invoice: &invCopy}, nil
}

// AttachDeliveryMessage records the message showing the invoice, provided
// the session still holds that invoice.
func (c *CheckoutService) AttachDeliveryMessage(chatID int64, invoiceID string, messageID int) bool {
	session := c.sessions.Get(chatID)
	session.Lock()
	defer session.Unlock()
	if !session.HoldsInvoice(invoiceID) {
		return false
	}
	session.SetDeliveryMessage(messageID)
	return true
}

// CheckPayment polls the gateway for the chat's invoice and resolves it when
// the status is terminal. A pending invoice leaves the session unchanged.
func (c *CheckoutService) CheckPayment(ctx context.Context, chatID int64) *domain.Outcome {
	session := c.sessions.Get(chatID)
	session.Lock()

	if !session.PaymentContextComplete() {
		messageID := session.MessageID
		session.ClearInvoice()
		session.Unlock()

		slog.Warn("payment check without active payment", "chat_id", chatID)
		c.retract(ctx, chatID, messageID)
		metrics.IncInvoiceResolution(string(domain.OutcomeNoPayment), sourceManual)
		return &domain.Outcome{
			Kind:       domain.OutcomeNoPayment,
			ChatID:     chatID,
			ResolvedAt: time.Now(),
			Err:        domain.ErrNoActivePayment,
		}
	}

	inv := *session.Invoice
	order := session.Order
	messageID := session.MessageID

	status, err := c.gateway.QueryInvoice(ctx, inv.InvoiceID)
	kind := classifyStatus(status, err)

	outcome := &domain.Outcome{
		Kind:       kind,
		ChatID:     chatID,
		OrderID:    inv.OrderID,
		InvoiceID:  inv.InvoiceID,
		Order:      order,
		ResolvedAt: time.Now(),
		Err:        err,
	}

	if !kind.Terminal() {
		session.Unlock()
		slog.Info("invoice still pending", "chat_id", chatID, "invoice_id", inv.InvoiceID, "status", status)
		return outcome
	}

	session.ClearInvoice()
	session.Unlock()

	c.retract(ctx, chatID, messageID)
	c.finish(ctx, outcome, sourceManual)
	return outcome
}

// Restart drops the chat's order and invoice and retracts the invoice message.
func (c *CheckoutService) Restart(ctx context.Context, chatID int64) {
	session := c.sessions.Get(chatID)
	session.Lock()
	messageID := session.MessageID
	session.Reset()
	session.Unlock()

	c.retract(ctx, chatID, messageID)
	slog.Debug("checkout restarted", "chat_id", chatID)
}

// runWatchdog fires once per issued invoice after the invoice lifetime. It
// re-queries the gateway first, then resolves the invoice as expired only if
// the session still holds it and it is not paid.
func (c *CheckoutService) runWatchdog(ctx context.Context, job WatchdogJob) {
	log := slog.With("chat_id", job.ChatID, "invoice_id", job.InvoiceID, "watchdog_id", job.ID)

	callCtx, cancel := context.WithTimeout(ctx, config.BackgroundCallTimeout)
	defer cancel()

	status, err := c.gateway.QueryInvoice(callCtx, job.InvoiceID)
	if err != nil {
		log.Warn("watchdog status query failed", "error", err)
	}

	session := c.sessions.Get(job.ChatID)
	session.Lock()

	if !session.HoldsInvoice(job.InvoiceID) {
		session.Unlock()
		log.Info("watchdog superseded", "status", status)
		metrics.IncWatchdogSuppressed("superseded")
		return
	}
	if status == domain.InvoiceStatusPaid {
		session.Unlock()
		log.Info("invoice paid before expiry, awaiting payment check")
		metrics.IncWatchdogSuppressed("paid")
		return
	}

	inv := *session.Invoice
	outcome := &domain.Outcome{
		Kind:       domain.OutcomeExpired,
		ChatID:     job.ChatID,
		OrderID:    inv.OrderID,
		InvoiceID:  inv.InvoiceID,
		Order:      session.Order,
		ResolvedAt: time.Now(),
	}
	messageID := session.MessageID
	session.ClearInvoice()
	session.Unlock()

	log.Info("invoice expired", "status", status)

	c.retract(callCtx, job.ChatID, messageID)
	c.finish(callCtx, outcome, sourceWatchdog)

	if err := c.notifier.DeliverOutcome(callCtx, outcome); err != nil {
		log.Error("deliver expiry notice", "error", err)
	}
}

// finish runs the side effects of a terminal outcome that won the resolution.
func (c *CheckoutService) finish(ctx context.Context, outcome *domain.Outcome, source string) {
	metrics.IncInvoiceResolution(string(outcome.Kind), source)
	if outcome.Kind != domain.OutcomePaid {
		slog.Info("invoice resolved", "chat_id", outcome.ChatID, "invoice_id", outcome.InvoiceID, "outcome", outcome.Kind, "source", source)
		return
	}

	outcome.Credentials = GenerateCredentials(outcome.Order.Quantity)
	metrics.AddSale(c.asset, outcome.Order.TotalPrice.InexactFloat64(), outcome.Order.Quantity)

	slog.Info("invoice paid",
		"chat_id", outcome.ChatID,
		"order_id", outcome.OrderID,
		"invoice_id", outcome.InvoiceID,
		"quantity", outcome.Order.Quantity,
		"total", outcome.Order.TotalPrice.String(),
	)

	if c.sales == nil {
		return
	}
	if err := c.sales.RecordSale(ctx, &domain.Sale{
		ChatID:     outcome.ChatID,
		OrderID:    outcome.OrderID,
		InvoiceID:  outcome.InvoiceID,
		Quantity:   outcome.Order.Quantity,
		TotalPrice: outcome.Order.TotalPrice,
		PaidAt:     outcome.ResolvedAt,
	}); err != nil {
		slog.Error("record sale", "chat_id", outcome.ChatID, "order_id", outcome.OrderID, "error", err)
	}
}

// retract removes the invoice message. Failures are logged and ignored.
func (c *CheckoutService) retract(ctx context.Context, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if err := c.notifier.RetractMessage(ctx, chatID, messageID); err != nil {
		slog.Warn("retract invoice message", "chat_id", chatID, "message_id", messageID, "error", err)
	}
}

func classifyStatus(status domain.InvoiceStatus, err error) domain.OutcomeKind {
	if err != nil {
		return domain.OutcomeError
	}
	switch status {
	case domain.InvoiceStatusPaid:
		return domain.OutcomePaid
	case domain.InvoiceStatusCancelled:
		return domain.OutcomeCancelled
	case domain.InvoiceStatusNotFound:
		return domain.OutcomeNotFound
	case domain.InvoiceStatusError:
		return domain.OutcomeError
	default:
		return domain.OutcomePending
	}
}
