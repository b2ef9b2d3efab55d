package widget

import (
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Fill paints every cell of its bounds with one cell value
type Fill struct {
	Cell terminal.Cell
}

// Sweep returns a Fill of blank cells with background bg
func Sweep(bg terminal.Color) *Fill {
	return &Fill{Cell: terminal.StyleDefault.Background(bg).Cell(' ')}
}

func (f *Fill) Render(dst grid.Drawable, bounds grid.Rect) error {
	grid.Of(dst, bounds).Fill(f.Cell)
	return nil
}

func (f *Fill) Update(event.Event, grid.ReadOnly) (Result, error) {
	return NoEvent, nil
}

func (f *Fill) Covers(grid.Rect) bool {
	return true
}

// Func adapts a drawing function to Widget; it never reacts to events
type Func func(v grid.View) error

func (f Func) Render(dst grid.Drawable, bounds grid.Rect) error {
	return f(grid.Of(dst, bounds))
}

func (f Func) Update(event.Event, grid.ReadOnly) (Result, error) {
	return NoEvent, nil
}
