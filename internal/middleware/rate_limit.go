package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/cryptoshop/internal/metrics"
)

const rateWindow = time.Minute

// RateLimiter counts updates per chat in fixed one-minute windows.
type RateLimiter struct {
	limit int
	now   func() time.Time

	mu      sync.Mutex
	windows map[int64]*rateWindowState
}

type rateWindowState struct {
	start time.Time
	count int
}

// NewRateLimiter allows limit updates per chat per minute. A limit below 1
// disables limiting.
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		now:     time.Now,
		windows: make(map[int64]*rateWindowState),
	}
}

// Allow records one update for the chat and reports whether it is within the limit.
func (r *RateLimiter) Allow(chatID int64) bool {
	if r.limit < 1 {
		return true
	}

	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.windows[chatID]
	if !ok || now.Sub(w.start) >= rateWindow {
		r.windows[chatID] = &rateWindowState{start: now, count: 1}
		r.sweep(now)
		return true
	}
	w.count++
	return w.count <= r.limit
}

// sweep drops windows that ended. Caller holds r.mu.
func (r *RateLimiter) sweep(now time.Time) {
	if len(r.windows) < 1024 {
		return
	}
	for id, w := range r.windows {
		if now.Sub(w.start) >= rateWindow {
			delete(r.windows, id)
		}
	}
}

// RateLimit returns middleware that enforces per-minute rate limits.
func RateLimit(limiter *RateLimiter) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			chatID, _, ok := UpdateSource(update)
			if !ok || limiter.Allow(chatID) {
				next(ctx, b, update)
				return
			}

			metrics.IncRateLimited()
			slog.Debug("rate limited", "chat_id", chatID, "limit", limiter.limit)

			if update.CallbackQuery != nil {
				b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
					CallbackQueryID: update.CallbackQuery.ID,
					Text:            "⏳ Слишком много запросов. Подождите немного.",
				})
				return
			}
			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: chatID,
				Text:   "⏳ Слишком много запросов. Подождите немного.",
			})
		}
	}
}
