package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/telegram"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/stat", bot.MatchTypePrefix, h.handleStat)

	// Menu callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbBackToMainMenu, bot.MatchTypeExact, h.handleMainMenu)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbSupport, bot.MatchTypeExact, h.handleSupport)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbFAQ, bot.MatchTypeExact, h.handleFAQ)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbReferralSystem, bot.MatchTypeExact, h.handleReferral)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbEarnMoney, bot.MatchTypeExact, h.handleEarn)

	// Buy callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbBuyAccounts, bot.MatchTypeExact, h.handleBuyMenu)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbBackToBuyMenu, bot.MatchTypeExact, h.handleBuyMenu)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbSelectPack, bot.MatchTypePrefix, h.handleSelectPack)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbSelectCustom, bot.MatchTypeExact, h.handleSelectCustom)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbRestart, bot.MatchTypeExact, h.handleRestart)

	// Payment callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbPayCryptoBot, bot.MatchTypeExact, h.handlePayCryptoBot)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbCheckPayment, bot.MatchTypeExact, h.handleCheckPayment)

	// Catch-all text goes last so commands match first.
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, h.handleText)
}

// callbackTarget returns the chat and message a callback query was pressed on.
// The query is acknowledged so the client stops its spinner.
func callbackTarget(ctx context.Context, b *bot.Bot, update *models.Update) (chatID int64, messageID int, ok bool) {
	cq := update.CallbackQuery
	if cq == nil {
		return 0, 0, false
	}
	telegram.AnswerCallback(ctx, b, cq.ID, "")

	switch {
	case cq.Message.Message != nil:
		return cq.Message.Message.Chat.ID, cq.Message.Message.ID, true
	case cq.Message.InaccessibleMessage != nil:
		return cq.Message.InaccessibleMessage.Chat.ID, 0, true
	}
	return 0, 0, false
}
