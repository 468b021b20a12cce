package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/telegram"
)

func (h *Handler) handlePayCryptoBot(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	checkout, err := h.checkout.ChooseCryptoPay(ctx, chatID, messageID)
	if errors.Is(err, domain.ErrNoActiveOrder) {
		if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, noOrderText(), restartKeyboard()); err != nil {
			slog.Error("show no order notice", "chat_id", chatID, "error", err)
		}
		return
	}
	if err != nil {
		h.tgLogger.LogError(err, "create invoice")
		if _, sendErr := telegram.EditOrSend(ctx, b, chatID, messageID, invoiceErrorText(err), invoiceErrorKeyboard()); sendErr != nil {
			slog.Error("show invoice error", "chat_id", chatID, "error", sendErr)
		}
		return
	}

	h.tgLogger.LogInvoice(chatID, checkout.Invoice, checkout.Order)

	text := invoiceText(checkout, h.cfg.CryptoPayAsset)
	shownID, err := telegram.EditOrSend(ctx, b, chatID, messageID, text, invoiceKeyboard(checkout.Invoice.PayURL))
	if err != nil {
		slog.Error("show invoice", "chat_id", chatID, "invoice_id", checkout.Invoice.InvoiceID, "error", err)
		return
	}
	if shownID != messageID && !h.checkout.AttachDeliveryMessage(chatID, checkout.Invoice.InvoiceID, shownID) {
		slog.Warn("invoice resolved before its message was shown", "chat_id", chatID, "invoice_id", checkout.Invoice.InvoiceID)
	}
}

func (h *Handler) handleCheckPayment(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	outcome := h.checkout.CheckPayment(ctx, chatID)
	switch outcome.Kind {
	case domain.OutcomePaid:
		h.tgLogger.LogSale(outcome)
	case domain.OutcomeError:
		if outcome.Err != nil {
			h.tgLogger.LogError(outcome.Err, "check payment")
		}
	}

	if err := telegram.SendLongHTML(ctx, b, chatID, outcomeText(outcome), keyboardOrNil(outcomeKeyboard(outcome))); err != nil {
		slog.Error("send payment outcome", "chat_id", chatID, "outcome", outcome.Kind, "error", err)
	}
}

// keyboardOrNil keeps a nil keyboard from becoming a non-nil interface.
func keyboardOrNil(k *models.InlineKeyboardMarkup) models.ReplyMarkup {
	if k == nil {
		return nil
	}
	return k
}
