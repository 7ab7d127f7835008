package tui

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brocode/goat/internal/countdown"
)

// bridge is the state shared between the Bubble Tea goroutine and the
// countdown producers.
type bridge struct {
	keys        chan rune
	closing     chan struct{}
	interrupted atomic.Bool

	mu   sync.Mutex
	size countdown.Size
}

func newBridge() *bridge {
	return &bridge{
		keys:    make(chan rune, keyBufferSize),
		closing: make(chan struct{}),
	}
}

func (b *bridge) setSize(s countdown.Size) {
	b.mu.Lock()
	b.size = s
	b.mu.Unlock()
}

func (b *bridge) lastSize() countdown.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Model is the root Bubble Tea model. It only mirrors the latest frame; all
// countdown decisions are made by the countdown loop.
type Model struct {
	bridge   *bridge
	frame    countdown.Frame
	hasFrame bool
	width    int
	height   int
	progress progress.Model
}

func newModel(b *bridge, bar progress.Model) Model {
	return Model{bridge: b, progress: bar}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // tea.Model contract
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.bridge.setSize(countdown.Size{Width: x.Width, Height: x.Height})
		return m, nil

	case resizeMsg:
		m.width, m.height = x.Size.Width, x.Size.Height
		return m, nil

	case frameMsg:
		m.frame = x.Frame
		m.hasFrame = true
		if x.Frame.Size.Width > 0 && x.Frame.Size.Height > 0 {
			m.width, m.height = x.Frame.Size.Width, x.Frame.Size.Height
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)
	}
	return m, nil
}

// handleKey forwards printable keys to the countdown. ctrl+c stops the program.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.bridge.interrupted.Store(true)
		return m, tea.Quit
	case tea.KeySpace:
		m.forward(' ')
	case tea.KeyRunes:
		if msg.Alt {
			return m, nil
		}
		for _, r := range msg.Runes {
			if !m.forward(r) {
				break
			}
		}
	}
	return m, nil
}

func (m Model) forward(r rune) bool {
	select {
	case m.bridge.keys <- r:
		return true
	case <-m.bridge.closing:
		return false
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.hasFrame {
		return ""
	}
	return renderFrame(m.frame, m.width, m.height, m.progress)
}
