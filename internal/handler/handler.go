package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/repository"
	"github.com/set-night/cryptoshop/internal/service"
	"github.com/set-night/cryptoshop/internal/telegram"
)

// SalesStats reports the totals shown by /stat.
type SalesStats interface {
	Stats(ctx context.Context) (*repository.SalesStats, error)
}

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	checkout    *service.CheckoutService
	sessions    *service.SessionStore
	sales       SalesStats
	tgLogger    *telegram.TelegramLogger
	botUsername string
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Checkout    *service.CheckoutService
	Sessions    *service.SessionStore
	Sales       SalesStats
	TgLogger    *telegram.TelegramLogger
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		checkout:    deps.Checkout,
		sessions:    deps.Sessions,
		sales:       deps.Sales,
		tgLogger:    deps.TgLogger,
		botUsername: deps.BotUsername,
	}
}
