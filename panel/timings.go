package panel

import (
	"context"
	"time"
)

// Timings are the delay parameters of both tasks. The defaults reproduce the
// original panel behavior; tests shrink them to keep runs fast.
type Timings struct {
	Poll     time.Duration // scanner iteration delay
	Debounce time.Duration // press confirm delay
	Off      time.Duration // renderer delay while off
	Chase    time.Duration // chase frame period
	Binary   time.Duration // binary-count frame period
}

// DefaultTimings returns the stock delays: 10ms poll, 20ms debounce confirm,
// 50ms off, 150ms chase, 200ms binary count.
func DefaultTimings() Timings {
	return Timings{
		Poll:     10 * time.Millisecond,
		Debounce: 20 * time.Millisecond,
		Off:      50 * time.Millisecond,
		Chase:    150 * time.Millisecond,
		Binary:   200 * time.Millisecond,
	}
}

// sleep blocks for d or until ctx is cancelled. Returns false on cancel.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
