package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type ctxKey string

const UserKey ctxKey = "user"

// GetUser extracts the update author stored by ChatContext.
func GetUser(ctx context.Context) *models.User {
	u, ok := ctx.Value(UserKey).(*models.User)
	if !ok {
		return nil
	}
	return u
}

// UpdateSource returns the chat and author of a message or callback update.
func UpdateSource(update *models.Update) (chatID int64, from *models.User, ok bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, update.Message.From, true
	case update.CallbackQuery != nil:
		if msg := update.CallbackQuery.Message.Message; msg != nil {
			return msg.Chat.ID, &update.CallbackQuery.From, true
		}
		// Inaccessible messages still carry the chat.
		if msg := update.CallbackQuery.Message.InaccessibleMessage; msg != nil {
			return msg.Chat.ID, &update.CallbackQuery.From, true
		}
	}
	return 0, nil, false
}

// ChatContext returns middleware that stores the update's author in the context.
func ChatContext() bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if _, from, ok := UpdateSource(update); ok && from != nil {
				ctx = context.WithValue(ctx, UserKey, from)
			}
			next(ctx, b, update)
		}
	}
}
