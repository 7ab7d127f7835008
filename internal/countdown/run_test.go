package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExpiresWithinOneTick(t *testing.T) {
	if testing.Short() {
		t.Skip("runs a real two second countdown")
	}
	t.Parallel()

	d := newRecordingDisplay()
	l := New(Config{Title: "GOAT", Duration: 2 * time.Second, Table: mustTable(t)}, d)

	start := time.Now()
	code, err := l.Run(context.Background(), make(chanKeys))
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Greater(t, elapsed, 2*time.Second)
	assert.Less(t, elapsed, 2*time.Second+DefaultTickInterval+250*time.Millisecond)

	frames := d.Frames()
	require.NotEmpty(t, frames)
	assert.Equal(t, 0, frames[0].Percent)
	for i := 1; i < len(frames); i++ {
		assert.GreaterOrEqual(t, frames[i].Percent, frames[i-1].Percent)
	}
}

func TestRun_ShortCountdownWithFastTicks(t *testing.T) {
	t.Parallel()

	d := newRecordingDisplay()
	l := New(Config{Duration: 150 * time.Millisecond, TickInterval: 10 * time.Millisecond, Table: mustTable(t)}, d)

	code, err := l.Run(context.Background(), make(chanKeys))
	require.NoError(t, err)
	assert.Equal(t, ExpiredCode, code)
	assert.Greater(t, len(d.Frames()), 2)
}

func TestRun_MappedKeyTerminatesImmediately(t *testing.T) {
	t.Parallel()

	keys := make(chanKeys, 1)
	keys <- 'a'

	l := New(Config{Duration: time.Minute, Table: mustTable(t, "65:a:custom")}, newRecordingDisplay())

	start := time.Now()
	code, err := l.Run(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, 65, code)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRun_AbortKey(t *testing.T) {
	t.Parallel()

	keys := make(chanKeys, 1)
	keys <- 'q'

	l := New(Config{Duration: time.Minute, Table: mustTable(t)}, newRecordingDisplay())
	code, err := l.Run(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestRun_ReadFailureIsFatal(t *testing.T) {
	t.Parallel()

	l := New(Config{Duration: time.Minute, Table: mustTable(t)}, newRecordingDisplay())
	code, err := l.Run(context.Background(), failingKeys{err: errBoom})
	assert.Equal(t, AbortCode, code)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "read key")
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	l := New(Config{Duration: time.Minute, Table: mustTable(t)}, newRecordingDisplay())
	code, err := l.Run(ctx, make(chanKeys))
	assert.Equal(t, AbortCode, code)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMerger_ProducersKeepOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chanKeys, 3)
	keys <- 'x'
	keys <- 'y'
	keys <- 'z'

	m := NewMerger()
	m.StartInput(ctx, keys)
	m.StartTicker(ctx, 5*time.Millisecond)

	var gotKeys []rune
	ticks := 0
	deadline := time.After(2 * time.Second)
	for len(gotKeys) < 3 || ticks < 3 {
		select {
		case ev := <-m.Events():
			switch ev.Kind {
			case KeyPressed:
				gotKeys = append(gotKeys, ev.Key)
			case Tick:
				ticks++
			}
		case <-deadline:
			t.Fatalf("timed out: keys=%q ticks=%d", gotKeys, ticks)
		}
	}
	assert.Equal(t, []rune{'x', 'y', 'z'}, gotKeys)
}

func TestMerger_FirstTickIsImmediate(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewMerger()
	m.StartTicker(ctx, time.Hour)

	select {
	case ev := <-m.Events():
		assert.Equal(t, Tick, ev.Kind)
	case <-time.After(time.Second):
		t.Fatal("no tick published")
	}
}

func TestMerger_ReadErrorReported(t *testing.T) {
	t.Parallel()

	m := NewMerger()
	m.StartInput(context.Background(), failingKeys{err: errBoom})

	select {
	case err := <-m.Errors():
		assert.ErrorIs(t, err, errBoom)
	case <-time.After(time.Second):
		t.Fatal("no error reported")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "key", KeyPressed.String())
	assert.Equal(t, "tick", Tick.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
