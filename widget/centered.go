package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
)

// Centered places its child's bounding box in the middle of the available area
// Odd remainders go to the right and bottom; a child larger than the area is clipped
type Centered[W Widget] struct {
	Child W
}

// Center wraps child in a Centered
func Center[W Widget](child W) *Centered[W] {
	return &Centered[W]{Child: child}
}

func (c *Centered[W]) place(r grid.Rect) grid.Rect {
	cb := BoundsOf(c.Child, r)
	return grid.Center(r, cb.W, cb.H)
}

func (c *Centered[W]) Render(dst grid.Drawable, bounds grid.Rect) error {
	return c.Child.Render(dst, c.place(bounds))
}

func (c *Centered[W]) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	ev, sub := forward(ev, screen, c.place(grid.Bounds(screen)))
	return c.Child.Update(ev, sub)
}

// BoundingBox claims the whole available area
func (c *Centered[W]) BoundingBox(avail grid.Rect) grid.Rect {
	return avail
}
