package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
)

// Stacked lays children out top to bottom, each in a full-width slice as tall
// as its bounding box. Children without a bounding box take all remaining
// height; children that find no height left are skipped.
type Stacked struct {
	Children []Widget
}

// Stack builds a Stacked, first child on top
func Stack(children ...Widget) *Stacked {
	return &Stacked{Children: children}
}

// slice returns the rect of the child given what is left, and the new remainder
func slice(w Widget, remaining grid.Rect) (child, rest grid.Rect) {
	h := min(BoundsOf(w, remaining).H, remaining.H)
	child = grid.NewRect(remaining.X, remaining.Y, remaining.W, h)
	rest = remaining.Shrink(h, 0, 0, 0)
	return child, rest
}

func (s *Stacked) Render(dst grid.Drawable, bounds grid.Rect) error {
	remaining := bounds
	for _, w := range s.Children {
		var r grid.Rect
		r, remaining = slice(w, remaining)
		if r.Empty() {
			continue
		}
		if err := w.Render(dst, r); err != nil {
			return err
		}
	}
	return nil
}

// Update forwards ev to every child and merges their results
// Stops at the first error, returning the results merged so far
func (s *Stacked) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	res := NoEvent
	remaining := grid.Bounds(screen)
	for _, w := range s.Children {
		var r grid.Rect
		r, remaining = slice(w, remaining)
		cev, sub := forward(ev, screen, r)
		cr, err := w.Update(cev, sub)
		res = Max(res, cr)
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

// BoundingBox is the widest child by the summed child heights
func (s *Stacked) BoundingBox(avail grid.Rect) grid.Rect {
	w, h := 0, 0
	remaining := avail
	for _, c := range s.Children {
		bb := BoundsOf(c, remaining)
		w = max(w, bb.W)
		var r grid.Rect
		r, remaining = slice(c, remaining)
		h += r.H
	}
	return grid.NewRect(avail.X, avail.Y, w, h).Intersect(avail)
}
