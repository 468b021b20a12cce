package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "missing tokens",
			env:     map[string]string{},
			wantErr: true,
		},
		{
			name: "defaults",
			env: map[string]string{
				"BOT_TOKEN":        "bot",
				"CRYPTO_BOT_TOKEN": "pay",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://pay.crypt.bot/api", cfg.CryptoPayURL)
				assert.Equal(t, "USDT", cfg.CryptoPayAsset)
				assert.Equal(t, 8443, cfg.Port)
				assert.False(t, cfg.WebhookEnabled())
				assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
			},
		},
		{
			name: "webhook mode",
			env: map[string]string{
				"BOT_TOKEN":        "bot",
				"CRYPTO_BOT_TOKEN": "pay",
				"WEBHOOK_URL":      "https://shop.example.com/",
				"PORT":             "9000",
				"LOG_LEVEL":        "DEBUG",
				"ADMIN_IDS":        "11,22",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.WebhookEnabled())
				assert.Equal(t, "https://shop.example.com/webhook", cfg.WebhookEndpoint())
				assert.Equal(t, 9000, cfg.Port)
				assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
				assert.True(t, cfg.IsAdmin(22))
				assert.False(t, cfg.IsAdmin(33))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", "")
			t.Setenv("CRYPTO_BOT_TOKEN", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
