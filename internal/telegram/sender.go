package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/config"
)

// SendHTML sends an HTML message and returns the id of the sent message.
// Falls back to plain text if Telegram rejects the markup.
func SendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) (int, error) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}

	msg, err := b.SendMessage(ctx, params)
	if err != nil {
		slog.Warn("html send failed, falling back to plain text", "chat_id", chatID, "error", err)
		params.ParseMode = ""
		msg, err = b.SendMessage(ctx, params)
		if err != nil {
			return 0, fmt.Errorf("send message: %w", err)
		}
	}
	return msg.ID, nil
}

// SendLongHTML sends text split into parts that fit a single message.
// The keyboard is attached to the last part.
func SendLongHTML(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) error {
	parts := SplitMessage(text, config.MaxTelegramMessageLen)
	for i, part := range parts {
		var m models.ReplyMarkup
		if i == len(parts)-1 {
			m = markup
		}
		if _, err := SendHTML(ctx, b, chatID, part, m); err != nil {
			return err
		}
	}
	return nil
}

// EditOrSend edits the message in place and sends a fresh one when the edit
// fails (message too old, deleted or not ours). It returns the id of the
// message now showing text.
func EditOrSend(ctx context.Context, b *bot.Bot, chatID int64, messageID int, text string, markup *models.InlineKeyboardMarkup) (int, error) {
	if messageID != 0 {
		params := &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: messageID,
			Text:      text,
			ParseMode: models.ParseModeHTML,
		}
		if markup != nil {
			params.ReplyMarkup = markup
		}
		_, err := b.EditMessageText(ctx, params)
		if err == nil {
			return messageID, nil
		}
		slog.Debug("edit failed, sending new message", "chat_id", chatID, "message_id", messageID, "error", err)
	}

	var m models.ReplyMarkup
	if markup != nil {
		m = markup
	}
	return SendHTML(ctx, b, chatID, text, m)
}

// DeleteMessage removes a message from the chat.
func DeleteMessage(ctx context.Context, b *bot.Bot, chatID int64, messageID int) error {
	_, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("delete message %d: %w", messageID, err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query, optionally with a toast.
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID, text string) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		slog.Debug("answer callback failed", "error", err)
	}
}
