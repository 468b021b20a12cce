package middleware

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/metrics"
)

// Recover returns middleware that recovers from panics so one bad update
// does not take the bot down.
func Recover() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			defer func() {
				if r := recover(); r != nil {
					chatID, _, _ := UpdateSource(update)
					metrics.IncHandlerPanic()
					slog.Error("panic recovered in handler",
						"update_id", update.ID,
						"chat_id", chatID,
						"panic", r,
						"stack", string(debug.Stack()),
					)
				}
			}()
			next(ctx, b, update)
		}
	}
}
