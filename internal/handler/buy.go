package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/telegram"
)

func (h *Handler) handleBuyMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, buyMenuText(), buyMenuKeyboard())
}

func (h *Handler) handleSelectPack(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	quantity, err := parsePackQuantity(update.CallbackQuery.Data)
	if err != nil {
		slog.Warn("bad pack callback", "chat_id", chatID, "data", update.CallbackQuery.Data, "error", err)
		if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, "Произошла ошибка при обработке данных. Попробуйте снова.", backToBuyKeyboard()); err != nil {
			slog.Error("show pack error", "chat_id", chatID, "error", err)
		}
		return
	}

	order, err := h.checkout.SelectPack(ctx, chatID, quantity)
	if err != nil {
		slog.Warn("select pack", "chat_id", chatID, "quantity", quantity, "error", err)
		if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, invalidQuantityText(), backToBuyKeyboard()); err != nil {
			slog.Error("show invalid quantity", "chat_id", chatID, "error", err)
		}
		return
	}

	if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, orderSummaryText(order), orderSummaryKeyboard()); err != nil {
		slog.Error("show order summary", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) handleSelectCustom(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	h.checkout.AwaitCustomQuantity(chatID)
	if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, customQuantityText(), backToBuyKeyboard()); err != nil {
		slog.Error("show custom quantity prompt", "chat_id", chatID, "error", err)
	}
}

// handleText receives plain text. The only text the bot expects is a custom
// quantity after the prompt.
func (h *Handler) handleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	text := update.Message.Text
	if strings.HasPrefix(text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	if !h.checkout.TakeAwaitingQuantity(chatID) {
		return
	}

	quantity, err := parseCustomQuantity(text)
	if err != nil {
		h.checkout.AwaitCustomQuantity(chatID)
		if _, err := telegram.SendHTML(ctx, b, chatID, invalidQuantityText(), backToBuyKeyboard()); err != nil {
			slog.Error("send invalid quantity", "chat_id", chatID, "error", err)
		}
		return
	}

	order, err := h.checkout.SelectPack(ctx, chatID, quantity)
	if err != nil {
		slog.Warn("select custom quantity", "chat_id", chatID, "quantity", quantity, "error", err)
		h.checkout.AwaitCustomQuantity(chatID)
		if _, err := telegram.SendHTML(ctx, b, chatID, invalidQuantityText(), backToBuyKeyboard()); err != nil {
			slog.Error("send invalid quantity", "chat_id", chatID, "error", err)
		}
		return
	}

	if _, err := telegram.SendHTML(ctx, b, chatID, orderSummaryText(order), orderSummaryKeyboard()); err != nil {
		slog.Error("send order summary", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) handleRestart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}

	h.checkout.Restart(ctx, chatID)
	if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, buyMenuText(), buyMenuKeyboard()); err != nil {
		slog.Error("show buy menu after restart", "chat_id", chatID, "error", err)
	}
}

// parsePackQuantity reads the quantity from "select_pack_<n>".
func parsePackQuantity(data string) (int, error) {
	raw, ok := strings.CutPrefix(data, cbSelectPack)
	if !ok {
		return 0, fmt.Errorf("unexpected callback %q", data)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse pack quantity: %w", err)
	}
	if n < config.MinQuantity || n > config.MaxQuantity {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, n)
	}
	return n, nil
}

// parseCustomQuantity reads a typed quantity within the allowed range.
func parseCustomQuantity(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, text)
	}
	if n < config.MinQuantity || n > config.MaxQuantity {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, n)
	}
	return n, nil
}
