package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required,notEmpty"`
	BotUsername string `env:"BOT_USERNAME"`

	// Payment: Crypto Pay (CryptoBot)
	CryptoPayToken string `env:"CRYPTO_BOT_TOKEN,required,notEmpty"`
	CryptoPayURL   string `env:"CRYPTO_PAY_API_URL" envDefault:"https://pay.crypt.bot/api"`
	CryptoPayAsset string `env:"CRYPTO_PAY_ASSET" envDefault:"USDT"`

	// Sales ledger, disabled when empty
	DatabaseURL string `env:"DATABASE_URL"`

	// Server: webhook mode when WebhookURL is set, long polling otherwise
	WebhookURL    string `env:"WEBHOOK_URL"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
	Port          int    `env:"PORT" envDefault:"8443"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Bot behavior
	DropPendingUpdates bool   `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`

	// Telegram logging
	LogTelegramChatID int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError     int   `env:"LOG_TOPIC_ERROR"`
	LogTopicSale      int   `env:"LOG_TOPIC_SALE"`
	LogTopicInvoice   int   `env:"LOG_TOPIC_INVOICE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

// WebhookEnabled reports whether updates are delivered by webhook.
func (c *Config) WebhookEnabled() bool {
	return c.WebhookURL != ""
}

// WebhookEndpoint is the public URL registered with Telegram.
func (c *Config) WebhookEndpoint() string {
	return strings.TrimRight(c.WebhookURL, "/") + WebhookPath
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
