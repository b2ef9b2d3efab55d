package event

import (
	"fmt"
	"time"

	"github.com/lixenwraith/cellgrid/grid"
)

// Type distinguishes update event categories
type Type uint8

const (
	TypeNone   Type = iota // Nothing to report, widgets may still advance state
	TypeKey                // Non-printable key: Key, State, Modifiers
	TypeRune               // Printable character: Rune, State, Modifiers
	TypeClick              // Cell clicked: X, Y, Button
	TypeTick               // Time passed since last update: Delta
	TypeResize             // Surface resized: Width, Height
)

// String returns the event category name
func (t Type) String() string {
	switch t {
	case TypeKey:
		return "Key"
	case TypeRune:
		return "Rune"
	case TypeClick:
		return "Click"
	case TypeTick:
		return "Tick"
	case TypeResize:
		return "Resize"
	default:
		return "None"
	}
}

// Event is an externally delivered input or timing event
// Fixed-size value, passed by copy to every widget
type Event struct {
	Type      Type
	Key       Key
	Rune      rune
	State     KeyState
	Modifiers Modifier

	// Click fields, in the coordinates of the receiving widget
	X, Y   int
	Button Button

	Delta         time.Duration // For TypeTick
	Width, Height int           // For TypeResize
}

// None is the empty event
var None = Event{}

// KeyPress returns a key-down event for a non-printable key
func KeyPress(k Key, mod Modifier) Event {
	return Event{Type: TypeKey, Key: k, State: StateDown, Modifiers: mod}
}

// RunePress returns a key-down event for a printable character
func RunePress(r rune, mod Modifier) Event {
	return Event{Type: TypeRune, Rune: r, State: StateDown, Modifiers: mod}
}

// Click returns a click at cell (x, y)
func Click(x, y int, b Button) Event {
	return Event{Type: TypeClick, X: x, Y: y, Button: b}
}

// Tick returns a time-passed event
func Tick(d time.Duration) Event {
	return Event{Type: TypeTick, Delta: d}
}

// Resize returns a surface-resized event
func Resize(w, h int) Event {
	return Event{Type: TypeResize, Width: w, Height: h}
}

// IsNone returns true if the event carries no information
func (e Event) IsNone() bool {
	return e.Type == TypeNone
}

// RelativeTo translates click coordinates into r's local space
// A click left of or above r's origin becomes None; other events pass unchanged
func (e Event) RelativeTo(r grid.Rect) Event {
	if e.Type != TypeClick {
		return e
	}
	x, y := e.X-r.X, e.Y-r.Y
	if x < 0 || y < 0 {
		return None
	}
	e.X, e.Y = x, y
	return e
}

// Inside reports whether a click lands within r, false for other events
func (e Event) Inside(r grid.Rect) bool {
	return e.Type == TypeClick && r.Contains(e.X, e.Y)
}

func (e Event) String() string {
	switch e.Type {
	case TypeKey:
		return fmt.Sprintf("Key(%s%s, %s)", e.Modifiers, e.Key, e.State)
	case TypeRune:
		return fmt.Sprintf("Rune(%s%q, %s)", e.Modifiers, e.Rune, e.State)
	case TypeClick:
		return fmt.Sprintf("Click(%d, %d, %s)", e.X, e.Y, e.Button)
	case TypeTick:
		return fmt.Sprintf("Tick(%s)", e.Delta)
	case TypeResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
	default:
		return "None"
	}
}
