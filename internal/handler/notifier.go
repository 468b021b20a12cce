package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/set-night/cryptoshop/internal/domain"
	"github.com/set-night/cryptoshop/internal/service"
	"github.com/set-night/cryptoshop/internal/telegram"
)

var _ service.Notifier = (*Notifier)(nil)

// Notifier delivers checkout results that arrive outside of an update, such
// as invoice expiry, and removes invoice messages.
type Notifier struct {
	bot *bot.Bot
}

func NewNotifier(b *bot.Bot) *Notifier {
	return &Notifier{bot: b}
}

func (n *Notifier) DeliverOutcome(ctx context.Context, outcome *domain.Outcome) error {
	if err := telegram.SendLongHTML(ctx, n.bot, outcome.ChatID, outcomeText(outcome), keyboardOrNil(outcomeKeyboard(outcome))); err != nil {
		return fmt.Errorf("deliver %s outcome: %w", outcome.Kind, err)
	}
	return nil
}

func (n *Notifier) RetractMessage(ctx context.Context, chatID int64, messageID int) error {
	return telegram.DeleteMessage(ctx, n.bot, chatID, messageID)
}
