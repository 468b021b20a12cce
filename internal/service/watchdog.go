package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/set-night/cryptoshop/internal/metrics"
)

// WatchdogJob identifies the invoice an expiry watchdog is responsible for.
// It carries identifiers only; session state is re-read when the job fires.
type WatchdogJob struct {
	ID        string
	ChatID    int64
	InvoiceID string
}

func NewWatchdogJob(chatID int64, invoiceID string) WatchdogJob {
	return WatchdogJob{ID: uuid.NewString(), ChatID: chatID, InvoiceID: invoiceID}
}

// Scheduler runs fn once after delay.
type Scheduler interface {
	Schedule(delay time.Duration, job WatchdogJob, fn func(ctx context.Context, job WatchdogJob))
}

// TimerScheduler runs each job in its own goroutine. Jobs are dropped when
// the parent context is cancelled.
type TimerScheduler struct {
	ctx context.Context
	wg  sync.WaitGroup
}

func NewTimerScheduler(ctx context.Context) *TimerScheduler {
	return &TimerScheduler{ctx: ctx}
}

func (s *TimerScheduler) Schedule(delay time.Duration, job WatchdogJob, fn func(ctx context.Context, job WatchdogJob)) {
	metrics.WatchdogScheduled()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer metrics.WatchdogFired()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-s.ctx.Done():
			slog.Debug("watchdog dropped on shutdown", "job_id", job.ID, "invoice_id", job.InvoiceID)
			return
		case <-timer.C:
		}

		fn(s.ctx, job)
	}()
}

// Wait blocks until every scheduled job has fired or been dropped.
func (s *TimerScheduler) Wait() {
	s.wg.Wait()
}
