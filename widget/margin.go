package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
)

// Margin insets its child independently on each side
// The margin area itself is never painted
type Margin[W Widget] struct {
	Top, Right, Bottom, Left int
	Child                    W
}

// WithMargin surrounds child with n cells on every side
func WithMargin[W Widget](n int, child W) *Margin[W] {
	return &Margin[W]{Top: n, Right: n, Bottom: n, Left: n, Child: child}
}

func (m *Margin[W]) inner(r grid.Rect) grid.Rect {
	return r.Shrink(m.Top, m.Right, m.Bottom, m.Left)
}

func (m *Margin[W]) Render(dst grid.Drawable, bounds grid.Rect) error {
	return m.Child.Render(dst, m.inner(bounds))
}

func (m *Margin[W]) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	ev, sub := forward(ev, screen, m.inner(grid.Bounds(screen)))
	return m.Child.Update(ev, sub)
}

// BoundingBox is the child's box grown by the margins, clipped to avail
func (m *Margin[W]) BoundingBox(avail grid.Rect) grid.Rect {
	cb := BoundsOf(m.Child, m.inner(avail))
	return cb.Grow(m.Top, m.Right, m.Bottom, m.Left).Intersect(avail)
}
