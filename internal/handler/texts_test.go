package handler

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackQuantity(t *testing.T) {
	tests := []struct {
		data    string
		want    int
		wantErr bool
	}{
		{data: "select_pack_1", want: 1},
		{data: "select_pack_30", want: 30},
		{data: "select_pack_100", want: 100},
		{data: "select_pack_0", wantErr: true},
		{data: "select_pack_101", wantErr: true},
		{data: "select_pack_x", wantErr: true},
		{data: "pay_cryptobot", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := parsePackQuantity(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCustomQuantity(t *testing.T) {
	n, err := parseCustomQuantity("  42 \n")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	for _, in := range []string{"", "abc", "0", "-5", "101", "4.5"} {
		_, err := parseCustomQuantity(in)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "input %q", in)
	}
}

func TestBuyMenuKeyboard_PackCallbacksParse(t *testing.T) {
	kb := buyMenuKeyboard()
	require.Len(t, kb.InlineKeyboard, len(config.Packs)+2)

	for i, p := range config.Packs {
		data := kb.InlineKeyboard[i][0].CallbackData
		got, err := parsePackQuantity(data)
		require.NoError(t, err, data)
		assert.Equal(t, p.Quantity, got)
	}
	assert.Equal(t, cbSelectCustom, kb.InlineKeyboard[len(config.Packs)][0].CallbackData)
}

func TestAccountsWord(t *testing.T) {
	tests := map[int]string{
		1:  "аккаунт",
		3:  "аккаунта",
		5:  "аккаунтов",
		11: "аккаунтов",
		21: "аккаунт",
		22: "аккаунта",
		30: "аккаунтов",
	}
	for n, want := range tests {
		assert.Equal(t, want, accountsWord(n), "n=%d", n)
	}
}

func TestReferrerFromStart(t *testing.T) {
	ref, ok := referrerFromStart("/start ref_12345")
	assert.True(t, ok)
	assert.Equal(t, "12345", ref)

	_, ok = referrerFromStart("/start")
	assert.False(t, ok)
	_, ok = referrerFromStart("/start promo")
	assert.False(t, ok)
	_, ok = referrerFromStart("/start ref_")
	assert.False(t, ok)
}

func TestReferralLink(t *testing.T) {
	assert.Equal(t, "https://t.me/shopbot?start=ref_777", referralLink("shopbot", 777))
}

func TestSuccessText(t *testing.T) {
	o := &domain.Outcome{
		Kind:    domain.OutcomePaid,
		OrderID: "12345678",
		Order: &domain.Order{
			Quantity:   2,
			UnitPrice:  decimal.NewFromInt(10),
			TotalPrice: decimal.NewFromInt(20),
		},
		Credentials: []domain.Credential{
			{Login: "AAAA1111", Password: "pass1"},
			{Login: "BBBB2222", Password: "pass2"},
		},
		ResolvedAt: time.Now(),
	}

	text := outcomeText(o)
	assert.Contains(t, text, "#12345678")
	assert.Contains(t, text, "20.00$")
	assert.Contains(t, text, "Аккаунт 1: <code>AAAA1111</code>: <code>pass1</code>")
	assert.Contains(t, text, "Аккаунт 2: <code>BBBB2222</code>: <code>pass2</code>")
	assert.Equal(t, cbBackToMainMenu, outcomeKeyboard(o).InlineKeyboard[0][0].CallbackData)
}

func TestOutcomeText_Failures(t *testing.T) {
	tests := []struct {
		name string
		o    *domain.Outcome
		want string
	}{
		{name: "pending", o: &domain.Outcome{Kind: domain.OutcomePending}, want: "Оплата не сделана"},
		{name: "expired", o: &domain.Outcome{Kind: domain.OutcomeExpired}, want: "в течение 5 минут"},
		{name: "cancelled", o: &domain.Outcome{Kind: domain.OutcomeCancelled}, want: "отменен"},
		{name: "not found", o: &domain.Outcome{Kind: domain.OutcomeNotFound}, want: "не найден"},
		{name: "no payment", o: &domain.Outcome{Kind: domain.OutcomeNoPayment}, want: "Данные о платеже не найдены"},
		{
			name: "gateway error",
			o:    &domain.Outcome{Kind: domain.OutcomeError, Err: &domain.GatewayError{Reason: "UNAUTHORIZED"}},
			want: "Ошибка при проверке платежа",
		},
		{
			name: "transport error",
			o:    &domain.Outcome{Kind: domain.OutcomeError, Err: &domain.TransportError{Detail: "HTTP 502"}},
			want: "внутренняя ошибка",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, outcomeText(tt.o), tt.want)
		})
	}
}

func TestOutcomeKeyboard(t *testing.T) {
	assert.Nil(t, outcomeKeyboard(&domain.Outcome{Kind: domain.OutcomePending}))
	assert.Nil(t, keyboardOrNil(nil))

	kb := outcomeKeyboard(&domain.Outcome{Kind: domain.OutcomeNoPayment})
	require.NotNil(t, kb)
	assert.Equal(t, cbRestart, kb.InlineKeyboard[0][0].CallbackData)
}

func TestInvoiceText(t *testing.T) {
	c := &domain.Checkout{
		Order: &domain.Order{Quantity: 20, UnitPrice: decimal.NewFromInt(9), TotalPrice: decimal.NewFromInt(180)},
		Invoice: &domain.Invoice{
			InvoiceID: "IV1",
			OrderID:   "87654321",
			PayURL:    "https://pay/IV1",
		},
	}

	text := invoiceText(c, "USDT")
	assert.Contains(t, text, "<code>87654321</code>")
	assert.Contains(t, text, "20 штук")
	assert.Contains(t, text, "180.00 USDT")

	kb := invoiceKeyboard(c.Invoice.PayURL)
	assert.Equal(t, "https://pay/IV1", kb.InlineKeyboard[0][0].URL)
	assert.Equal(t, cbCheckPayment, kb.InlineKeyboard[1][0].CallbackData)
}

func TestInvoiceErrorText(t *testing.T) {
	text := invoiceErrorText(&domain.GatewayError{Reason: "AMOUNT_TOO_SMALL"})
	assert.Contains(t, text, "Ошибка: AMOUNT_TOO_SMALL")

	text = invoiceErrorText(fmt.Errorf("wrapped: %w", errors.New("<boom>")))
	assert.Contains(t, text, "&lt;boom&gt;")
}

func TestOrderSummaryText(t *testing.T) {
	text := orderSummaryText(&domain.Order{Quantity: 50, UnitPrice: decimal.NewFromInt(8), TotalPrice: decimal.NewFromInt(400)})
	assert.Contains(t, text, "50 штук")
	assert.Contains(t, text, "8.00$")
	assert.Contains(t, text, "400.00$")
}

func TestStatText(t *testing.T) {
	text := statText(&repository.SalesStats{Orders: 3, Accounts: 12, Revenue: decimal.RequireFromString("115.5")}, 9, 2, "USDT")
	assert.Contains(t, text, "115.50 USDT")
	assert.True(t, strings.Contains(text, "12"))
	assert.Contains(t, text, "Открытых счетов:</b> 2")
}
