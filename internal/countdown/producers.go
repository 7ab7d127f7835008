package countdown

import (
	"context"
	"fmt"
	"time"
)

const eventBufferSize = 64

// KeySource blocks until the next key press is available.
type KeySource interface {
	ReadKey(ctx context.Context) (rune, error)
}

// Merger fans the input and tick producers into one event stream with a
// single consumer. Events from one producer arrive in publish order.
type Merger struct {
	events chan Event
	errs   chan error
}

// NewMerger creates an idle merger; call StartInput and StartTicker to feed it.
func NewMerger() *Merger {
	return &Merger{
		events: make(chan Event, eventBufferSize),
		errs:   make(chan error, 1),
	}
}

// Events is the merged stream.
func (m *Merger) Events() <-chan Event { return m.events }

// Errors delivers the first fatal producer error.
func (m *Merger) Errors() <-chan error { return m.errs }

// StartInput publishes a KeyPressed event for every key read from src until
// ctx is done or a read fails. A read failure is reported on Errors.
func (m *Merger) StartInput(ctx context.Context, src KeySource) {
	go func() {
		for {
			r, err := src.ReadKey(ctx)
			if err != nil {
				if ctx.Err() == nil {
					m.fail(fmt.Errorf("read key: %w", err))
				}
				return
			}
			if !m.publish(ctx, KeyEvent(r)) {
				return
			}
		}
	}()
}

// StartTicker publishes a Tick, sleeps interval, and repeats until ctx is done.
func (m *Merger) StartTicker(ctx context.Context, interval time.Duration) {
	go func() {
		for {
			if !m.publish(ctx, TickEvent()) {
				return
			}
			select {
			case <-time.After(interval):
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Merger) publish(ctx context.Context, ev Event) bool {
	select {
	case m.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func (m *Merger) fail(err error) {
	select {
	case m.errs <- err:
	default:
	}
}
