package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Widget is a renderable, updatable UI element
//
// Render paints only inside bounds, a rectangle in dst coordinates.
// Update reacts to ev with read-only access to the widget's on-screen area;
// screen is local to the widget and click coordinates in ev are relative to it.
// Update changes only the widget's own state, never the grid.
type Widget interface {
	Render(dst grid.Drawable, bounds grid.Rect) error
	Update(ev event.Event, screen grid.ReadOnly) (Result, error)
}

// BoundingBox is implemented by widgets that know the area they need
// The returned rectangle lies inside avail
type BoundingBox interface {
	BoundingBox(avail grid.Rect) grid.Rect
}

// Coverer is implemented by widgets that can tell whether they paint every cell of r
type Coverer interface {
	Covers(r grid.Rect) bool
}

// Result reports a widget's status after an update, ordered so that merging
// sibling results takes the maximum
type Result uint8

const (
	NoEvent      Result = iota // Nothing happened, widget lives on
	Interacted                 // Input affected the widget
	LifecycleEnd               // Widget is done and should be dropped by its owner
)

func (r Result) String() string {
	switch r {
	case Interacted:
		return "Interacted"
	case LifecycleEnd:
		return "LifecycleEnd"
	default:
		return "NoEvent"
	}
}

// Max merges two results
func Max(a, b Result) Result {
	if a > b {
		return a
	}
	return b
}

// BoundsOf returns w's bounding box within avail, or avail when w has none
func BoundsOf(w Widget, avail grid.Rect) grid.Rect {
	if bb, ok := w.(BoundingBox); ok {
		return bb.BoundingBox(avail).Intersect(avail)
	}
	return avail
}

// CoveredIn reports whether w paints every cell of its bounding box within avail
func CoveredIn(w Widget, avail grid.Rect) bool {
	c, ok := w.(Coverer)
	if !ok {
		return false
	}
	return c.Covers(BoundsOf(w, avail))
}

// Draw renders w over the whole of dst
func Draw(w Widget, dst grid.Drawable) error {
	if err := w.Render(dst, grid.Bounds(dst)); err != nil {
		return wrapRender(w, err)
	}
	return nil
}

// Dispatch delivers ev to w with the whole of screen as its area
func Dispatch(w Widget, ev event.Event, screen grid.ReadOnly) (Result, error) {
	res, err := w.Update(ev, screen)
	if err != nil {
		return res, wrapUpdate(w, err)
	}
	return res, nil
}

// forward narrows ev and screen to a child occupying r in screen coordinates
// Clicks outside r reach the child as None
func forward(ev event.Event, screen grid.ReadOnly, r grid.Rect) (event.Event, grid.ReadView) {
	if ev.Type == event.TypeClick && !ev.Inside(r) {
		ev = event.None
	} else {
		ev = ev.RelativeTo(r)
	}
	return ev, grid.OfReadOnly(screen, r)
}

// paint sets a cell; a default background is transparent and keeps the existing one
func paint(v grid.View, x, y int, r rune, s terminal.Style) {
	if s.Bg.IsDefault() {
		if old, ok := v.At(x, y); ok {
			s.Bg = old.Bg
		}
	}
	v.Set(x, y, s.Cell(r))
}
