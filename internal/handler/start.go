package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/middleware"
	"github.com/set-night/cryptoshop/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	log := slog.With("chat_id", chatID)
	if user := middleware.GetUser(ctx); user != nil {
		log = log.With("user_id", user.ID, "username", user.Username)
	}

	// Parse deep link payload
	if ref, ok := referrerFromStart(update.Message.Text); ok {
		log.Info("start via referral link", "referrer", ref)
	} else {
		log.Info("start")
	}

	if _, err := telegram.SendHTML(ctx, b, chatID, mainMenuText(), mainMenuKeyboard()); err != nil {
		log.Error("send main menu", "error", err)
	}
}

// referrerFromStart extracts the referrer id from "/start ref_<id>".
func referrerFromStart(text string) (string, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 || !strings.HasPrefix(parts[1], referralLinkPrefix) {
		return "", false
	}
	ref := strings.TrimPrefix(parts[1], referralLinkPrefix)
	return ref, ref != ""
}

func (h *Handler) handleMainMenu(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, mainMenuText(), mainMenuKeyboard())
}

func (h *Handler) handleSupport(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, supportText(), backToMainKeyboard())
}

func (h *Handler) handleFAQ(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, faqText(), backToMainKeyboard())
}

func (h *Handler) handleEarn(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.showScreen(ctx, b, update, earnText(), earnKeyboard())
}

// showScreen replaces the pressed message with a static screen.
func (h *Handler) showScreen(ctx context.Context, b *bot.Bot, update *models.Update, text string, markup *models.InlineKeyboardMarkup) {
	chatID, messageID, ok := callbackTarget(ctx, b, update)
	if !ok {
		return
	}
	if _, err := telegram.EditOrSend(ctx, b, chatID, messageID, text, markup); err != nil {
		slog.Error("show screen", "chat_id", chatID, "callback", update.CallbackQuery.Data, "error", err)
	}
}
