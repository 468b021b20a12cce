package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopSales(t *testing.T) {
	var ledger NopSales

	require.NoError(t, ledger.RecordSale(context.Background(), &domain.Sale{OrderID: "12345678"}))

	stats, err := ledger.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Orders)
	assert.True(t, stats.Revenue.IsZero())
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("exec: %w", dup)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
