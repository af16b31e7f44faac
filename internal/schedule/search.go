package schedule

import (
	"context"
	"time"
)

// SearchPolicy bounds the sliding-window availability search.
type SearchPolicy struct {
	// WindowDays is the width of each query window in calendar days.
	WindowDays int
	// MaxAttempts caps how many windows are tried before giving up.
	MaxAttempts int
	// InterAttemptDelay is slept between attempts to avoid hammering the
	// provider. Zero disables the delay.
	InterAttemptDelay time.Duration
}

func (p SearchPolicy) normalized() SearchPolicy {
	if p.WindowDays <= 0 {
		p.WindowDays = 1
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}
	return p
}

// FetchFunc queries one provider window and returns normalized slots.
type FetchFunc func(ctx context.Context, window Window) ([]Slot, error)

// Search slides a WindowDays-wide window forward from start until fetch
// returns slots or MaxAttempts windows have been tried. Window bounds are
// expanded to full calendar days in loc (00:00:00 through 23:59:59.999).
//
// A fetch error counts as an empty window: transient provider failures must
// not abort the search. Exhausting the budget returns an empty result and a
// nil error; that is the normal "no availability" outcome.
func Search(ctx context.Context, policy SearchPolicy, loc *time.Location, start time.Time, fetch FetchFunc) ([]Slot, error) {
	policy = policy.normalized()
	if loc == nil {
		loc = time.UTC
	}

	cursor := start.In(loc)
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 && policy.InterAttemptDelay > 0 {
			if err := sleep(ctx, policy.InterAttemptDelay); err != nil {
				return nil, err
			}
		}

		window := dayWindow(cursor, policy.WindowDays, loc)
		slots, err := fetch(ctx, window)
		if err == nil && len(slots) > 0 {
			return slots, nil
		}
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		cursor = cursor.AddDate(0, 0, policy.WindowDays)
	}
	return nil, nil
}

// dayWindow spans days full calendar days starting at t's date in loc.
func dayWindow(t time.Time, days int, loc *time.Location) Window {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, days).Add(-time.Millisecond)
	return Window{Start: start, End: end}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
