package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/config"
	"github.com/set-night/cryptoshop/internal/domain"
)

// TelegramLogger mirrors notable events into topics of a log chat.
type TelegramLogger struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewTelegramLogger(b *bot.Bot, cfg *config.Config) *TelegramLogger {
	return &TelegramLogger{bot: b, cfg: cfg}
}

type LogType string

const (
	LogTypeError   LogType = "error"
	LogTypeSale    LogType = "sale"
	LogTypeInvoice LogType = "invoice"
)

func (l *TelegramLogger) Log(logType LogType, message string) {
	if l == nil || l.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := l.getTopicID(logType)
	if topicID == 0 {
		return
	}

	// Truncate if too long
	if len([]rune(message)) > config.MaxTelegramMessageLen {
		message = string([]rune(message)[:config.MaxTelegramMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.BackgroundCallTimeout)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          l.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       models.ParseModeHTML,
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (l *TelegramLogger) LogError(err error, where string) {
	msg := fmt.Sprintf("❌ <b>Error</b>\n\n<b>Context:</b> %s\n<b>Error:</b> %s\n<b>Time:</b> %s",
		EscapeHTML(where), Code(err.Error()), time.Now().Format(time.DateTime))
	l.Log(LogTypeError, msg)
}

func (l *TelegramLogger) LogInvoice(chatID int64, inv *domain.Invoice, order *domain.Order) {
	msg := fmt.Sprintf("🧾 <b>Invoice Issued</b>\n\n<b>Chat:</b> %s\n<b>Order:</b> %s\n<b>Invoice:</b> %s\n<b>Quantity:</b> %d\n<b>Total:</b> $%s",
		Code(fmt.Sprint(chatID)), Code(inv.OrderID), Code(inv.InvoiceID), order.Quantity, order.TotalPrice.StringFixed(2))
	l.Log(LogTypeInvoice, msg)
}

func (l *TelegramLogger) LogSale(outcome *domain.Outcome) {
	msg := fmt.Sprintf("💰 <b>Sale</b>\n\n<b>Chat:</b> %s\n<b>Order:</b> %s\n<b>Invoice:</b> %s\n<b>Quantity:</b> %d\n<b>Total:</b> $%s",
		Code(fmt.Sprint(outcome.ChatID)), Code(outcome.OrderID), Code(outcome.InvoiceID),
		outcome.Order.Quantity, outcome.Order.TotalPrice.StringFixed(2))
	l.Log(LogTypeSale, msg)
}

func (l *TelegramLogger) getTopicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return l.cfg.LogTopicError
	case LogTypeSale:
		return l.cfg.LogTopicSale
	case LogTypeInvoice:
		return l.cfg.LogTopicInvoice
	default:
		return 0
	}
}
