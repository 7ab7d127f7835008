package tui

import (
	"errors"

	"github.com/brocode/goat/internal/countdown"
)

// Message types for the Bubble Tea update loop.

// frameMsg replaces the frame being displayed.
type frameMsg struct{ Frame countdown.Frame }

// resizeMsg carries a geometry reconciled by the countdown loop.
type resizeMsg struct{ Size countdown.Size }

// Errors reported by ReadKey once the program is gone.
var (
	// ErrClosed means the terminal program stopped.
	ErrClosed = errors.New("terminal closed")
	// ErrInterrupted means the operator pressed ctrl+c.
	ErrInterrupted = errors.New("interrupted")
)
