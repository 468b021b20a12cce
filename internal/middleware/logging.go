package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/metrics"
)

// Logging returns middleware that logs update processing time.
func Logging() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			start := time.Now()

			updateType := "unknown"
			detail := ""
			switch {
			case update.Message != nil:
				updateType = "message"
				if len(update.Message.Text) > 0 && update.Message.Text[0] == '/' {
					detail = update.Message.Text
				}
			case update.CallbackQuery != nil:
				updateType = "callback_query"
				detail = update.CallbackQuery.Data
			}

			chatID, from, _ := UpdateSource(update)
			var userID int64
			if from != nil {
				userID = from.ID
			}

			metrics.IncUpdate(updateType)
			next(ctx, b, update)

			slog.Debug("update processed",
				"type", updateType,
				"detail", detail,
				"chat_id", chatID,
				"user_id", userID,
				"duration", time.Since(start),
			)
		}
	}
}
