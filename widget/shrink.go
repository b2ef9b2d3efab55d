package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
)

// ShrinkWrap renders its child at the child's own size, anchored at the origin
// of the available area, so an enclosing layout sees only what the child needs
type ShrinkWrap[W Widget] struct {
	Child W
}

// Shrink wraps child in a ShrinkWrap
func Shrink[W Widget](child W) *ShrinkWrap[W] {
	return &ShrinkWrap[W]{Child: child}
}

func (s *ShrinkWrap[W]) place(r grid.Rect) grid.Rect {
	cb := BoundsOf(s.Child, r)
	return grid.NewRect(r.X, r.Y, cb.W, cb.H).Intersect(r)
}

func (s *ShrinkWrap[W]) Render(dst grid.Drawable, bounds grid.Rect) error {
	return s.Child.Render(dst, s.place(bounds))
}

func (s *ShrinkWrap[W]) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	ev, sub := forward(ev, screen, s.place(grid.Bounds(screen)))
	return s.Child.Update(ev, sub)
}

// BoundingBox is the child's size at the origin of avail
func (s *ShrinkWrap[W]) BoundingBox(avail grid.Rect) grid.Rect {
	return s.place(avail)
}
