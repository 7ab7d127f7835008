package tui

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/brocode/goat/internal/countdown"
)

// Terminal runs a Bubble Tea program that owns raw mode, the alternate screen
// and key decoding. It serves the countdown loop both as its countdown.Display
// and as its countdown.KeySource.
type Terminal struct {
	program *tea.Program
	bridge  *bridge
	sizeFn  func() (int, int, error)

	done      chan struct{}
	runErr    error
	closeOnce sync.Once
	prevLog   io.Writer
}

type options struct {
	input   io.Reader
	output  io.Writer
	noColor bool
	sizeFn  func() (int, int, error)
}

// Option customizes a Terminal.
type Option func(*options)

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) Option { return func(o *options) { o.input = r } }

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option { return func(o *options) { o.output = w } }

// WithNoColor renders without colors.
func WithNoColor() Option { return func(o *options) { o.noColor = true } }

// WithSizeFunc overrides how the geometry is queried.
func WithSizeFunc(fn func() (int, int, error)) Option { return func(o *options) { o.sizeFn = fn } }

// Start launches the program in the background. Logging is silenced until
// Close so log lines cannot corrupt the screen.
func Start(opts ...Option) *Terminal {
	o := options{input: os.Stdin, output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	barOpts := []progress.Option{progress.WithDefaultGradient()}
	if o.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		barOpts = append(barOpts, progress.WithColorProfile(termenv.Ascii))
	}

	if o.sizeFn == nil {
		if f, ok := o.output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			fd := int(f.Fd())
			o.sizeFn = func() (int, int, error) { return term.GetSize(fd) }
		}
	}

	b := newBridge()
	t := &Terminal{
		bridge: b,
		sizeFn: o.sizeFn,
		done:   make(chan struct{}),
	}
	t.program = tea.NewProgram(
		newModel(b, progress.New(barOpts...)),
		tea.WithAltScreen(),
		tea.WithInput(o.input),
		tea.WithOutput(o.output),
		tea.WithoutSignalHandler(),
	)

	t.prevLog = logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)

	go func() {
		_, err := t.program.Run()
		t.runErr = err
		close(t.done)
	}()
	return t
}

// ReadKey blocks until the next printable key press.
func (t *Terminal) ReadKey(ctx context.Context) (rune, error) {
	select {
	case r := <-t.bridge.keys:
		return r, nil
	case <-t.done:
		if t.bridge.interrupted.Load() {
			return 0, ErrInterrupted
		}
		return 0, ErrClosed
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Size returns the terminal geometry, falling back to the last size reported
// by the program when the output is not a terminal.
func (t *Terminal) Size() (countdown.Size, error) {
	if t.sizeFn == nil {
		return t.bridge.lastSize(), nil
	}
	w, h, err := t.sizeFn()
	if err != nil {
		return countdown.Size{}, err
	}
	return countdown.Size{Width: w, Height: h}, nil
}

// Resize makes the view lay out for s.
func (t *Terminal) Resize(s countdown.Size) error {
	return t.send(resizeMsg{Size: s})
}

// Draw shows f.
func (t *Terminal) Draw(f countdown.Frame) error {
	return t.send(frameMsg{Frame: f})
}

func (t *Terminal) send(msg tea.Msg) error {
	select {
	case <-t.done:
		if t.runErr != nil {
			return t.runErr
		}
		return ErrClosed
	default:
	}
	t.program.Send(msg)
	return nil
}

// Close stops the program, restores the terminal and re-enables logging.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.bridge.closing)
		t.program.Quit()
		<-t.done
		logrus.SetOutput(t.prevLog)
	})
	return t.runErr
}
