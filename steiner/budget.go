package steiner

import (
	"log/slog"
	"time"
)

// budget is the soft wall-clock limit of one call, measured from its start.
type budget struct {
	now      func() time.Time
	start    time.Time
	deadline time.Time
	log      *slog.Logger
	spent    bool
}

func newBudget(limit time.Duration, log *slog.Logger) *budget {
	return newBudgetClock(limit, log, time.Now)
}

// newBudgetClock is newBudget over an explicit clock.
func newBudgetClock(limit time.Duration, log *slog.Logger, now func() time.Time) *budget {
	start := now()

	return &budget{now: now, start: start, deadline: start.Add(limit), log: log}
}

// expired reports whether the deadline has passed. The first expiry is
// logged at Warn with the phase that noticed it.
func (b *budget) expired(phase string) bool {
	if b.spent {
		return true
	}
	now := b.now()
	if now.Before(b.deadline) {
		return false
	}
	b.spent = true
	b.log.Warn("time budget exhausted, continuing with partial results",
		slog.String("phase", phase),
		slog.Duration("elapsed", now.Sub(b.start)))

	return true
}
