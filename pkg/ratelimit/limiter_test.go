package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock advances instantly instead of sleeping, so the budget math can
// be verified without real waiting.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return nil
}

func TestNewRejectsZeroBudget(t *testing.T) {
	_, err := New(0, nil)
	require.Error(t, err)

	_, err = New(-5, nil)
	require.Error(t, err)
}

func TestWaitNeverExceedsBudgetInRollingWindow(t *testing.T) {
	const perMinute = 60
	const calls = 150

	clock := newFakeClock()
	limiter, err := New(perMinute, clock)
	require.NoError(t, err)

	starts := make([]time.Time, 0, calls)
	for i := 0; i < calls; i++ {
		require.NoError(t, limiter.Wait(context.Background()))
		starts = append(starts, clock.Now())
	}

	// Count starts in every rolling 60-second window (half-open].
	for i := range starts {
		count := 0
		windowStart := starts[i].Add(-time.Minute)
		for _, s := range starts {
			if s.After(windowStart) && !s.After(starts[i]) {
				count++
			}
		}
		require.LessOrEqualf(t, count, perMinute,
			"window ending at call %d admitted %d starts", i, count)
	}
}

func TestWaitHonorsCancelledContext(t *testing.T) {
	clock := newFakeClock()
	limiter, err := New(30, clock)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, limiter.Wait(ctx))
}

func TestWaitSpacesPermitsEvenly(t *testing.T) {
	clock := newFakeClock()
	limiter, err := New(120, clock) // one permit each 500ms
	require.NoError(t, err)

	require.NoError(t, limiter.Wait(context.Background()))
	first := clock.Now()

	require.NoError(t, limiter.Wait(context.Background()))
	second := clock.Now()

	require.Equal(t, 500*time.Millisecond, second.Sub(first))
}
