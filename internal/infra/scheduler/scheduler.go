package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// FixedDelay waits between polling cycles according to a cron schedule.
// With an "@every" descriptor the wait is the same after every cycle.
type FixedDelay struct {
	schedule cron.Schedule
	spec     string
	now      func() time.Time
}

// NewFixedDelay parses spec with the standard cron parser, e.g. "@every 10m" or "*/10 * * * *".
func NewFixedDelay(spec string) (*FixedDelay, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid retry schedule %q: %w", spec, err)
	}
	return &FixedDelay{schedule: schedule, spec: spec, now: time.Now}, nil
}

// Delay returns how long to wait from now until the next cycle is due.
func (d *FixedDelay) Delay(now time.Time) time.Duration {
	next := d.schedule.Next(now)
	if next.IsZero() || !next.After(now) {
		return 0
	}
	return next.Sub(now)
}

// Sleep blocks until the next cycle is due. It returns ctx.Err() if ctx is done first.
func (d *FixedDelay) Sleep(ctx context.Context) error {
	timer := time.NewTimer(d.Delay(d.now()))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (d *FixedDelay) String() string {
	return d.spec
}
