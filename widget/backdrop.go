package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Backdrop paints Fill over all of its bounds, then the child on top
// Its bounding box is the child's, so a Centered backdrop hugs the child
type Backdrop[W Widget] struct {
	Fill  terminal.Cell
	Child W
}

// OnBackdrop wraps child over a blank backdrop of color bg
func OnBackdrop[W Widget](bg terminal.Color, child W) *Backdrop[W] {
	return &Backdrop[W]{Fill: terminal.StyleDefault.Background(bg).Cell(' '), Child: child}
}

func (b *Backdrop[W]) Render(dst grid.Drawable, bounds grid.Rect) error {
	grid.Of(dst, bounds).Fill(b.Fill)
	return b.Child.Render(dst, bounds)
}

func (b *Backdrop[W]) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	return b.Child.Update(ev, screen)
}

// BoundingBox is the child's box, avail when the child has none
func (b *Backdrop[W]) BoundingBox(avail grid.Rect) grid.Rect {
	return BoundsOf(b.Child, avail)
}

// Covers is true for any rectangle inside its bounds
func (b *Backdrop[W]) Covers(r grid.Rect) bool {
	return true
}
