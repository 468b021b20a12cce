package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/shopspring/decimal"
)

// SalesStats summarizes the sales ledger.
type SalesStats struct {
	Orders   int64
	Accounts int64
	Revenue  decimal.Decimal
}

type SalesRepository struct {
	db *pgxpool.Pool
}

func NewSalesRepository(db *pgxpool.Pool) *SalesRepository {
	return &SalesRepository{db: db}
}

// RecordSale stores a paid order. A second record for the same invoice is ignored.
func (r *SalesRepository) RecordSale(ctx context.Context, sale *domain.Sale) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sales (chat_id, order_id, invoice_id, quantity, total_price, paid_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6)`,
		sale.ChatID, sale.OrderID, sale.InvoiceID, sale.Quantity, sale.TotalPrice.String(), sale.PaidAt,
	)
	if isUniqueViolation(err) {
		slog.Warn("sale already recorded", "invoice_id", sale.InvoiceID, "order_id", sale.OrderID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *SalesRepository) Stats(ctx context.Context) (*SalesStats, error) {
	var (
		stats   SalesStats
		revenue string
	)
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(quantity), 0), COALESCE(SUM(total_price), 0)::text
		FROM sales`,
	).Scan(&stats.Orders, &stats.Accounts, &revenue)
	if err != nil {
		return nil, fmt.Errorf("query sales stats: %w", err)
	}

	stats.Revenue, err = decimal.NewFromString(revenue)
	if err != nil {
		return nil, fmt.Errorf("parse revenue %q: %w", revenue, err)
	}
	return &stats, nil
}

// NopSales is used when no database is configured.
type NopSales struct{}

func (NopSales) RecordSale(context.Context, *domain.Sale) error { return nil }

func (NopSales) Stats(context.Context) (*SalesStats, error) {
	return &SalesStats{Revenue: decimal.Zero}, nil
}
