package countdown

import "fmt"

// Kind tags an Event.
type Kind int

const (
	// KeyPressed carries the rune read from the keyboard.
	KeyPressed Kind = iota
	// Tick is published by the ticker every tick interval.
	Tick
)

func (k Kind) String() string {
	switch k {
	case KeyPressed:
		return "key"
	case Tick:
		return "tick"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is a single message on the merged stream. Key is only set for KeyPressed.
type Event struct {
	Kind Kind
	Key  rune
}

// KeyEvent builds a KeyPressed event.
func KeyEvent(r rune) Event { return Event{Kind: KeyPressed, Key: r} }

// TickEvent builds a Tick event.
func TickEvent() Event { return Event{Kind: Tick} }
