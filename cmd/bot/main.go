package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	cryptoshop "github.com/set-night/cryptoshop"
	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/handler"
	"github.com/set-night/cryptoshop/internal/metrics"
	"github.com/set-night/cryptoshop/internal/middleware"
	"github.com/set-night/cryptoshop/internal/repository"
	"github.com/set-night/cryptoshop/internal/server"
	"github.com/set-night/cryptoshop/internal/service"
	"github.com/set-night/cryptoshop/internal/telegram"
	"golang.org/x/sync/errgroup"
)

type salesStore interface {
	service.SalesLedger
	handler.SalesStats
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.MustRegister()

	// Sales ledger is optional
	var sales salesStore = repository.NopSales{}
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		migrationsFS, err := fs.Sub(cryptoshop.MigrationsFS, "migrations")
		if err != nil {
			slog.Error("failed to load embedded migrations", "error", err)
			os.Exit(1)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		sales = repository.NewSalesRepository(pool)
	} else {
		slog.Info("DATABASE_URL not set, sales ledger disabled")
	}

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.ChatContext(),
			middleware.Logging(),
			middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimitPerMinute)),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Unrouted callbacks still need an answer to stop the client spinner.
			if update.CallbackQuery != nil {
				telegram.AnswerCallback(ctx, b, update.CallbackQuery.ID, "")
			}
		}),
	}
	if cfg.WebhookSecret != "" {
		opts = append(opts, bot.WithWebhookSecretToken(cfg.WebhookSecret))
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	botUsername := cfg.BotUsername
	if botUsername == "" {
		botUsername = me.Username
	}

	// Initialize telegram logger
	tgLogger := telegram.NewTelegramLogger(b, cfg)

	// Initialize checkout
	sessions := service.NewSessionStore()
	scheduler := service.NewTimerScheduler(ctx)
	checkout := service.NewCheckoutService(service.CheckoutDeps{
		Sessions:  sessions,
		Gateway:   service.NewCryptoPayClient(cfg.CryptoPayURL, cfg.CryptoPayToken, cfg.CryptoPayAsset),
		Notifier:  handler.NewNotifier(b),
		Scheduler: scheduler,
		Sales:     sales,
		Asset:     cfg.CryptoPayAsset,
	})

	// Initialize handler
	h := handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Checkout:    checkout,
		Sessions:    sessions,
		Sales:       sales,
		TgLogger:    tgLogger,
		BotUsername: botUsername,
	})

	// Register all handlers
	h.Register()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.WebhookEnabled() {
		srv := server.New(cfg.Port, b.WebhookHandler())
		g.Go(func() error { return srv.Run(gctx) })
		g.Go(func() error {
			ok, err := b.SetWebhook(gctx, &bot.SetWebhookParams{
				URL:                cfg.WebhookEndpoint(),
				SecretToken:        cfg.WebhookSecret,
				DropPendingUpdates: cfg.DropPendingUpdates,
			})
			if err != nil {
				return fmt.Errorf("set webhook: %w", err)
			}
			if !ok {
				return errors.New("set webhook: telegram returned false")
			}
			slog.Info("starting bot in webhook mode", "username", me.Username, "url", cfg.WebhookEndpoint())
			b.StartWebhook(gctx)
			return nil
		})
	} else {
		srv := server.New(cfg.Port, nil)
		g.Go(func() error { return srv.Run(gctx) })
		g.Go(func() error {
			if _, err := b.DeleteWebhook(gctx, &bot.DeleteWebhookParams{
				DropPendingUpdates: cfg.DropPendingUpdates,
			}); err != nil {
				slog.Warn("failed to delete webhook", "error", err)
			}
			slog.Info("starting bot in polling mode", "username", me.Username, "id", me.ID)
			b.Start(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("bot stopped with error", "error", err)
	}

	// Pending watchdogs are dropped on shutdown
	stop()
	scheduler.Wait()

	// Graceful shutdown
	slog.Info("bot stopped gracefully")
}
