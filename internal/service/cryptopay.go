package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/metrics"
	"github.com/shopspring/decimal"
)

const tokenHeader = "Crypto-Pay-API-Token"

// InvoiceGateway creates invoices and reports their status.
type InvoiceGateway interface {
	CreateInvoice(ctx context.Context, amount decimal.Decimal, description, payload string) (*domain.Invoice, error)
	QueryInvoice(ctx context.Context, invoiceID string) (domain.InvoiceStatus, error)
}

// CryptoPayClient talks to the Crypto Pay API (CryptoBot).
type CryptoPayClient struct {
	client *resty.Client
	asset  string
}

func NewCryptoPayClient(baseURL, token, asset string) *CryptoPayClient {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(config.GatewayTimeout).
		SetHeader(tokenHeader, token).
		SetHeader("Content-Type", "application/json")
	if asset == "" {
		asset = "USDT"
	}
	return &CryptoPayClient{client: c, asset: asset}
}

type apiResponse[T any] struct {
	OK     bool      `json:"ok"`
	Result T         `json:"result"`
	Error  *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

func (e *apiError) reason() string {
	if e == nil || e.Name == "" {
		return "Unknown error"
	}
	return e.Name
}

// flexID accepts invoice ids encoded either as JSON numbers or strings.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invoice id: unexpected token %s", b)
		}
		*id = flexID(n.String())
		return nil
	}
}

type createInvoiceRequest struct {
	Asset       string `json:"asset"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Payload     string `json:"payload"`
	ExpiresIn   int    `json:"expires_in"`
}

type invoiceResult struct {
	InvoiceID flexID `json:"invoice_id"`
	Status    string `json:"status"`
	PayURL    string `json:"pay_url"`
	BotURL    string `json:"bot_invoice_url"`
}

type getInvoicesRequest struct {
	InvoiceIDs []string `json:"invoice_ids"`
}

type getInvoicesResult struct {
	Items []invoiceResult `json:"items"`
}

// CreateInvoice issues an invoice that expires at the gateway after
// config.InvoiceTTL. Every failure is reported as *domain.GatewayError.
func (c *CryptoPayClient) CreateInvoice(ctx context.Context, amount decimal.Decimal, description, payload string) (*domain.Invoice, error) {
	start := time.Now()
	inv, err := c.createInvoice(ctx, amount, description, payload)
	metrics.ObserveGatewayRequest("create_invoice", err, time.Since(start))
	return inv, err
}

func (c *CryptoPayClient) createInvoice(ctx context.Context, amount decimal.Decimal, description, payload string) (*domain.Invoice, error) {
	slog.Info("creating invoice", "amount", amount.String(), "payload", payload)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(createInvoiceRequest{
			Asset:       c.asset,
			Amount:      amount.String(),
			Description: description,
			Payload:     payload,
			ExpiresIn:   int(config.InvoiceTTL / time.Second),
		}).
		Post("/createInvoice")
	if err != nil {
		return nil, &domain.GatewayError{Reason: "request failed", Err: err}
	}

	slog.Debug("create invoice response", "status", resp.StatusCode(), "body", resp.String())

	if resp.StatusCode() != http.StatusOK {
		return nil, &domain.GatewayError{Reason: fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), resp.String())}
	}

	var result apiResponse[invoiceResult]
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &domain.GatewayError{Reason: "malformed response", Err: err}
	}
	if !result.OK {
		return nil, &domain.GatewayError{Reason: result.Error.reason()}
	}

	invoiceID := string(result.Result.InvoiceID)
	if invoiceID == "" {
		return nil, &domain.GatewayError{Reason: "response has no invoice_id"}
	}

	payURL := result.Result.PayURL
	if payURL == "" {
		payURL = result.Result.BotURL
	}
	if payURL == "" {
		payURL = "https://t.me/CryptoBot?start=IV" + invoiceID
	}

	slog.Info("invoice created", "invoice_id", invoiceID, "payload", payload)

	return &domain.Invoice{
		InvoiceID: invoiceID,
		OrderID:   payload,
		PayURL:    payURL,
		CreatedAt: time.Now(),
		Status:    domain.InvoiceStatusActive,
	}, nil
}

// QueryInvoice returns the current gateway status. An unknown invoice is
// reported as domain.InvoiceStatusNotFound with a nil error; network and
// decoding failures as *domain.TransportError.
func (c *CryptoPayClient) QueryInvoice(ctx context.Context, invoiceID string) (domain.InvoiceStatus, error) {
	start := time.Now()
	status, err := c.queryInvoice(ctx, invoiceID)
	metrics.ObserveGatewayRequest("get_invoices", err, time.Since(start))
	return status, err
}

func (c *CryptoPayClient) queryInvoice(ctx context.Context, invoiceID string) (domain.InvoiceStatus, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(getInvoicesRequest{InvoiceIDs: []string{invoiceID}}).
		Post("/getInvoices")
	if err != nil {
		return domain.InvoiceStatusError, &domain.TransportError{Detail: "request failed", Err: err}
	}

	slog.Debug("get invoices response", "invoice_id", invoiceID, "status", resp.StatusCode(), "body", resp.String())

	if resp.StatusCode() != http.StatusOK {
		return domain.InvoiceStatusError, &domain.TransportError{Detail: fmt.Sprintf("HTTP %d: %s", resp.StatusCode(), resp.String())}
	}

	var result apiResponse[getInvoicesResult]
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return domain.InvoiceStatusError, &domain.TransportError{Detail: "malformed response", Err: err}
	}
	if !result.OK {
		return domain.InvoiceStatusError, &domain.GatewayError{Reason: result.Error.reason()}
	}
	if len(result.Result.Items) == 0 {
		slog.Warn("invoice not found at gateway", "invoice_id", invoiceID)
		return domain.InvoiceStatusNotFound, nil
	}

	return domain.InvoiceStatus(result.Result.Items[0].Status), nil
}
