package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerScheduler_Fires(t *testing.T) {
	s := NewTimerScheduler(context.Background())

	fired := make(chan WatchdogJob, 1)
	job := NewWatchdogJob(1, "abc")
	s.Schedule(10*time.Millisecond, job, func(ctx context.Context, j WatchdogJob) {
		fired <- j
	})

	select {
	case got := <-fired:
		assert.Equal(t, job, got)
	case <-time.After(time.Second):
		t.Fatal("watchdog did not fire")
	}
	s.Wait()
}

func TestTimerScheduler_DroppedOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewTimerScheduler(ctx)

	var calls atomic.Int32
	s.Schedule(time.Hour, NewWatchdogJob(1, "abc"), func(ctx context.Context, j WatchdogJob) {
		calls.Add(1)
	})

	cancel()
	s.Wait()
	assert.Zero(t, calls.Load())
}
