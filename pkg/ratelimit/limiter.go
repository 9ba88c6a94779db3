package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Clock abstracts time so tests can drive the limiter with a simulated
// clock. The process uses SystemClock.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep waits for d or until the context is cancelled.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Limiter is the process-wide request budget. Permits are spaced evenly at
// the per-minute ceiling (burst of one), so no rolling 60-second window ever
// starts more than the configured number of calls. Exceeding the provider
// budget can lock out the whole run, so callers block until a slot frees
// rather than failing fast.
//
// One instance is injected into the data client; there is no package-level
// singleton.
type Limiter struct {
	bucket *rate.Limiter
	clock  Clock
}

// New builds a limiter for perMinute requests per minute. A nil clock means
// the system clock.
func New(perMinute int, clock Clock) (*Limiter, error) {
	if perMinute <= 0 {
		return nil, fmt.Errorf("ratelimit: per-minute budget must be > 0, got %d", perMinute)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Limiter{
		bucket: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		clock:  clock,
	}, nil
}

// Wait blocks until a permit is available or ctx is done. Reservation is
// atomic under concurrent callers; only the sleep happens outside the
// bucket's lock.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := l.clock.Now()
	r := l.bucket.ReserveN(now, 1)
	if !r.OK() {
		return fmt.Errorf("ratelimit: reservation rejected")
	}

	delay := r.DelayFrom(now)
	if err := l.clock.Sleep(ctx, delay); err != nil {
		r.CancelAt(l.clock.Now())
		return err
	}
	return nil
}
