// Package pacer spaces out calls to the translation API so batch runs stay
// under the provider's rate limit.
package pacer

import (
	"context"
	"time"
)

// Pacer blocks until the next call is permitted.
type Pacer interface {
	Wait(ctx context.Context) error
}

// DefaultInterval is the pause between consecutive API requests.
const DefaultInterval = 10 * time.Second

// NewFixed returns a pacer that keeps at least interval between consecutive
// calls. The first call passes immediately. clk may be nil, in which case
// time.Now is used; tests inject a fake clock.
func NewFixed(interval time.Duration, clk func() time.Time) Pacer {
	if clk == nil {
		clk = time.Now
	}
	return &fixed{interval: interval, clk: clk}
}

type fixed struct {
	interval time.Duration
	clk      func() time.Time
	last     time.Time
}

func (f *fixed) Wait(ctx context.Context) error {
	now := f.clk()
	if !f.last.IsZero() {
		if wait := f.interval - now.Sub(f.last); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	f.last = f.clk()
	return nil
}

// Nop returns a pacer that never waits. Used by tests.
func Nop() Pacer {
	return nopPacer{}
}

type nopPacer struct{}

func (nopPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}
