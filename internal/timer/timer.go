// Package timer derives countdown progress from a fixed start instant and
// target duration. A Timer is never mutated after New; every query reads the
// clock afresh, so it is safe to share across goroutines.
package timer

import (
	"fmt"
	"time"
)

const fullPercent = 100

// Clock returns the current instant. time.Now keeps a monotonic reading,
// which is what Elapsed relies on.
type Clock func() time.Time

// Timer is a single countdown in progress.
type Timer struct {
	start    time.Time
	duration time.Duration
	now      Clock
}

// Option customizes a Timer.
type Option func(*Timer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.now = c }
}

// New starts a countdown of duration at the current clock reading.
func New(duration time.Duration, opts ...Option) *Timer {
	t := &Timer{duration: duration, now: time.Now}
	for _, o := range opts {
		o(t)
	}
	t.start = t.now()
	return t
}

// Start returns the captured start instant.
func (t *Timer) Start() time.Time { return t.start }

// Duration returns the target duration.
func (t *Timer) Duration() time.Duration { return t.duration }

// Elapsed returns the time passed since Start.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Remaining returns the time left, floored at zero.
func (t *Timer) Remaining() time.Duration {
	if r := t.duration - t.Elapsed(); r > 0 {
		return r
	}
	return 0
}

// Percent returns progress as an integer in [0,100].
func (t *Timer) Percent() int {
	return PercentOf(t.Elapsed(), t.duration)
}

// Expired reports whether elapsed time is strictly past the duration.
func (t *Timer) Expired() bool {
	return ExpiredAt(t.Elapsed(), t.duration)
}

// Label formats progress as "<elapsed>s / <total>s" in whole seconds.
func (t *Timer) Label() string {
	return LabelOf(t.Elapsed(), t.duration)
}

// PercentOf computes floor(elapsed/total*100) on millisecond resolution,
// clamped to [0,100]. A non-positive total counts as complete.
func PercentOf(elapsed, total time.Duration) int {
	totalMS := total.Milliseconds()
	if totalMS <= 0 {
		return fullPercent
	}
	elapsedMS := elapsed.Milliseconds()
	if elapsedMS <= 0 {
		return 0
	}
	if elapsedMS >= totalMS {
		return fullPercent
	}
	return int(elapsedMS * fullPercent / totalMS)
}

// ExpiredAt is false at elapsed == total so the full frame is drawn once
// before the countdown ends.
func ExpiredAt(elapsed, total time.Duration) bool {
	return elapsed > total
}

// LabelOf formats elapsed and total in whole seconds.
func LabelOf(elapsed, total time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return fmt.Sprintf("%ds / %ds", int64(elapsed/time.Second), int64(total/time.Second))
}
