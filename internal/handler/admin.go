package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/repository"
	"github.com/set-night/cryptoshop/internal/telegram"
)

func (h *Handler) handleStat(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	if !h.cfg.IsAdmin(update.Message.From.ID) {
		return
	}

	chatID := update.Message.Chat.ID

	stats, err := h.sales.Stats(ctx)
	if err != nil {
		slog.Error("load sales stats", "error", err)
		h.tgLogger.LogError(err, "/stat")
		if _, err := telegram.SendHTML(ctx, b, chatID, "❌ Не удалось получить статистику.", nil); err != nil {
			slog.Error("send stats failure", "chat_id", chatID, "error", err)
		}
		return
	}

	text := statText(stats, h.sessions.Len(), h.sessions.ActiveInvoices(), h.cfg.CryptoPayAsset)
	if _, err := telegram.SendHTML(ctx, b, chatID, text, nil); err != nil {
		slog.Error("send stats", "chat_id", chatID, "error", err)
	}
}

func statText(stats *repository.SalesStats, sessions, activeInvoices int, asset string) string {
	return fmt.Sprintf("📊 <b>Статистика</b>\n\n"+
		"<b>Заказов оплачено:</b> %d\n"+
		"<b>Аккаунтов выдано:</b> %d\n"+
		"<b>Выручка:</b> %s %s\n\n"+
		"<b>Сессий в памяти:</b> %d\n"+
		"<b>Открытых счетов:</b> %d",
		stats.Orders, stats.Accounts, money(stats.Revenue), telegram.EscapeHTML(asset),
		sessions, activeInvoices)
}
