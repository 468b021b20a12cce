package config

import "time"

const (
	// Invoice lifetime set at the gateway and the watchdog delay
	InvoiceTTL = 300 * time.Second

	// Client-side bound for every gateway call
	GatewayTimeout = 10 * time.Second

	// Custom quantity bounds
	MinQuantity = 1
	MaxQuantity = 100

	// Credentials
	LoginLength    = 8
	PasswordLength = 12
	OrderIDLength  = 8

	// Product
	ProductName = "Stripe Accounts"

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Best-effort calls made outside an update (watchdog, log chat)
	BackgroundCallTimeout = 10 * time.Second

	// HTTP server
	WebhookPath     = "/webhook"
	ShutdownTimeout = 5 * time.Second

	// Support contacts
	SupportTelegram = "@Xvcen_Garant_BOT"
	SupportEmail    = "Xvcen@Garant.com"
)

// Pack is a preset quantity offered in the buy menu.
type Pack struct {
	Name     string
	Quantity int
}

// Packs shown in the buy menu, in order.
var Packs = []Pack{
	{Name: "Lite Pack", Quantity: 1},
	{Name: "Starter Pack", Quantity: 3},
	{Name: "Smart Pack", Quantity: 5},
	{Name: "Pro Pack", Quantity: 10},
	{Name: "Premium Pack", Quantity: 20},
	{Name: "Ultimate Pack", Quantity: 30},
}
