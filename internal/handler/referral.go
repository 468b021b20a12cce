package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleReferral(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	userID := update.CallbackQuery.From.ID
	username := h.botUsername
	if username == "" {
		username = "yourbot_username"
	}
	link := referralLink(username, userID)

	slog.Debug("referral link shown", "user_id", userID)
	h.showScreen(ctx, b, update, referralText(link), backToMainKeyboard())
}
