package core

// Key represents a semantic key press, abstracted from physical keys.
// This lets the session work with intents rather than raw terminal input.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow, W, K
	KeyDown      // Down arrow, S, J
	KeyLeft      // Left arrow, A, H
	KeyRight     // Right arrow, D, L
	KeyPause     // P
	KeyQuit      // Q, Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// EventKind distinguishes the events an input source can deliver.
type EventKind int

const (
	EventIgnored EventKind = iota
	EventKey
	EventResize
)

// Event is a single input event: a key press, a terminal resize, or
// something the game does not care about.
type Event struct {
	Kind   EventKind
	Key    Key // Valid when Kind == EventKey
	Width  int // Valid when Kind == EventResize
	Height int
}

// KeyEvent builds a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// ResizeEvent builds a terminal resize event.
func ResizeEvent(w, h int) Event {
	return Event{Kind: EventResize, Width: w, Height: h}
}
