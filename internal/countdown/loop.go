// Package countdown runs the interactive countdown: a key reader and a ticker
// feed one event stream, and a single-threaded loop decides when to redraw and
// which exit code ends the run.
package countdown

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/brocode/goat/internal/mapping"
	"github.com/brocode/goat/internal/timer"
)

// Config is fixed before the loop starts and never written afterward.
type Config struct {
	Title        string
	Duration     time.Duration
	Table        *mapping.Table
	TickInterval time.Duration
	// Clock overrides time.Now for the timer; nil uses the wall clock.
	Clock timer.Clock
}

// Loop is the countdown state machine.
type Loop struct {
	cfg     Config
	display Display
	legend  []mapping.Entry
	log     *logrus.Entry
}

// New prepares a loop drawing to d.
func New(cfg Config, d Display) *Loop {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	return &Loop{
		cfg:     cfg,
		display: d,
		legend:  cfg.Table.Entries(),
		log:     logrus.WithField("run_id", uuid.NewString()),
	}
}

// Run starts the input and tick producers and blocks until a mapped key is
// pressed, the countdown expires, a producer or the display fails, or ctx is
// cancelled. Producers are stopped before Run returns.
func (l *Loop) Run(ctx context.Context, keys KeySource) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tm := l.newTimer()
	l.log.Debugf("countdown started: %s, %d bindings", l.cfg.Duration, len(l.legend))

	m := NewMerger()
	m.StartInput(ctx, keys)
	m.StartTicker(ctx, l.cfg.TickInterval)

	code, err := l.consume(ctx, tm, m.Events(), m.Errors())
	l.log.Debugf("countdown finished after %s with code %d", tm.Elapsed().Truncate(time.Millisecond), code)
	return code, err
}

func (l *Loop) newTimer() *timer.Timer {
	if l.cfg.Clock != nil {
		return timer.New(l.cfg.Duration, timer.WithClock(l.cfg.Clock))
	}
	return timer.New(l.cfg.Duration)
}

// consume is the state machine proper. Each iteration performs exactly one
// blocking receive.
func (l *Loop) consume(ctx context.Context, tm *timer.Timer, events <-chan Event, errs <-chan error) (int, error) {
	size, err := l.display.Size()
	if err != nil {
		return AbortCode, fmt.Errorf("query display size: %w", err)
	}
	if err := l.draw(tm, size); err != nil {
		return AbortCode, err
	}

	for {
		current, err := l.display.Size()
		if err != nil {
			return AbortCode, fmt.Errorf("query display size: %w", err)
		}
		if current != size {
			l.log.Debugf("display resized to %dx%d", current.Width, current.Height)
			if err := l.display.Resize(current); err != nil {
				return AbortCode, fmt.Errorf("resize display: %w", err)
			}
			size = current
		}

		var ev Event
		select {
		case ev = <-events:
		case err := <-errs:
			return AbortCode, err
		case <-ctx.Done():
			return AbortCode, ctx.Err()
		}

		switch ev.Kind {
		case KeyPressed:
			if m, ok := l.cfg.Table.Lookup(ev.Key); ok {
				l.log.Debugf("key %q -> %s (%d)", ev.Key, m.Label, m.Code)
				return m.Code, nil
			}
			l.log.Debugf("ignoring unmapped key %q", ev.Key)
		case Tick:
			if tm.Expired() {
				return ExpiredCode, nil
			}
			if err := l.draw(tm, size); err != nil {
				return AbortCode, err
			}
		}
	}
}

func (l *Loop) draw(tm *timer.Timer, size Size) error {
	f := Frame{
		Title:   l.cfg.Title,
		Percent: tm.Percent(),
		Label:   tm.Label(),
		Legend:  l.legend,
		Size:    size,
	}
	if err := l.display.Draw(f); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}
