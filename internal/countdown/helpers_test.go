package countdown

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/brocode/goat/internal/mapping"
)

var errBoom = errors.New("boom")

// mockDisplay is a testify mock of Display.
type mockDisplay struct{ mock.Mock }

func (m *mockDisplay) Size() (Size, error) {
	args := m.Called()
	return args.Get(0).(Size), args.Error(1) //nolint:forcetypeassert // test mock
}

func (m *mockDisplay) Resize(s Size) error { return m.Called(s).Error(0) }

func (m *mockDisplay) Draw(f Frame) error { return m.Called(f).Error(0) }

// recordingDisplay keeps every frame and signals each draw on drawn.
type recordingDisplay struct {
	mu     sync.Mutex
	size   Size
	frames []Frame
	drawn  chan Frame
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{size: Size{Width: 80, Height: 24}, drawn: make(chan Frame, 128)}
}

func (d *recordingDisplay) Size() (Size, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size, nil
}

func (d *recordingDisplay) Resize(Size) error { return nil }

func (d *recordingDisplay) Draw(f Frame) error {
	d.mu.Lock()
	d.frames = append(d.frames, f)
	d.mu.Unlock()
	select {
	case d.drawn <- f:
	default:
	}
	return nil
}

func (d *recordingDisplay) Frames() []Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Frame(nil), d.frames...)
}

func (d *recordingDisplay) waitFrame(t *testing.T) Frame {
	t.Helper()
	select {
	case f := <-d.drawn:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a frame")
		return Frame{}
	}
}

// chanKeys is a KeySource fed from a channel.
type chanKeys chan rune

func (k chanKeys) ReadKey(ctx context.Context) (rune, error) {
	select {
	case r := <-k:
		return r, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// failingKeys fails every read.
type failingKeys struct{ err error }

func (k failingKeys) ReadKey(context.Context) (rune, error) { return 0, k.err }

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func mustTable(t *testing.T, raw ...string) *mapping.Table {
	t.Helper()
	table, err := mapping.Parse(raw)
	require.NoError(t, err)
	return table
}

type result struct {
	code int
	err  error
}
