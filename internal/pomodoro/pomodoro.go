// Package pomodoro implements a work/break countdown timer.
package pomodoro

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Timer alternates work and break phases, printing a countdown. Notify,
// when set, is called once at the end of each phase; delivery is
// fire-and-forget and failures are not modeled.
type Timer struct {
	Work   time.Duration
	Break  time.Duration
	Cycles int // 0 means run until the context is canceled

	// Tick is the wall-clock interval of one displayed second. Tests
	// shrink it; zero means one second.
	Tick time.Duration

	Notify func(msg string)
}

func (t *Timer) tick() time.Duration {
	if t.Tick > 0 {
		return t.Tick
	}
	return time.Second
}

func (t *Timer) notify(msg string) {
	if t.Notify != nil {
		t.Notify(msg)
	}
}

// Run drives the timer until the cycle count is reached or ctx is
// canceled. Cancellation is a normal exit, not an error.
func (t *Timer) Run(ctx context.Context, w io.Writer) error {
	for cycle := 0; t.Cycles == 0 || cycle < t.Cycles; cycle++ {
		if done, err := t.countdown(ctx, w, "Work", t.Work); done || err != nil {
			return err
		}
		t.notify("Time's up! Take a break.")

		if done, err := t.countdown(ctx, w, "Break", t.Break); done || err != nil {
			return err
		}
		t.notify("Break is over! Back to work.")
	}
	return nil
}

// countdown counts d down in displayed seconds. done is true when the
// context was canceled.
func (t *Timer) countdown(ctx context.Context, w io.Writer, label string, d time.Duration) (done bool, err error) {
	total := int(d / t.tick())
	ticker := time.NewTicker(t.tick())
	defer ticker.Stop()

	for remaining := total; remaining > 0; remaining-- {
		fmt.Fprintf(w, "\r%s  %02d:%02d ", label, remaining/60, remaining%60)
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			return true, nil
		case <-ticker.C:
		}
	}
	fmt.Fprintf(w, "\r%s  00:00\n", label)
	return false, nil
}
