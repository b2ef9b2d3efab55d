package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
	LineNone:    {' ', ' ', ' ', ' ', ' ', ' '},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Border frames its child with a one-cell box, optional title in the top edge
type Border[W Widget] struct {
	Line  LineType
	Style terminal.Style
	Title string
	Child W
}

// Boxed frames child with single lines
func Boxed[W Widget](title string, child W) *Border[W] {
	return &Border[W]{Line: LineSingle, Title: title, Child: child}
}

func (b *Border[W]) Render(dst grid.Drawable, bounds grid.Rect) error {
	drawBox(grid.Of(dst, bounds), b.Line, b.Style, b.Title)
	return b.Child.Render(dst, bounds.Inset(1))
}

func (b *Border[W]) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	ev, sub := forward(ev, screen, grid.Bounds(screen).Inset(1))
	return b.Child.Update(ev, sub)
}

// BoundingBox is the child's box plus the frame, clipped to avail
func (b *Border[W]) BoundingBox(avail grid.Rect) grid.Rect {
	return BoundsOf(b.Child, avail.Inset(1)).Grow(1, 1, 1, 1).Intersect(avail)
}

// drawBox draws border around view edge, nothing when smaller than 2x2
func drawBox(v grid.View, line LineType, style terminal.Style, title string) {
	w, h := v.Width(), v.Height()
	if w < 2 || h < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	// Corners
	paint(v, 0, 0, chars[boxTL], style)
	paint(v, w-1, 0, chars[boxTR], style)
	paint(v, 0, h-1, chars[boxBL], style)
	paint(v, w-1, h-1, chars[boxBR], style)

	// Horizontal edges
	for x := 1; x < w-1; x++ {
		paint(v, x, 0, chars[boxH], style)
		paint(v, x, h-1, chars[boxH], style)
	}

	// Vertical edges
	for y := 1; y < h-1; y++ {
		paint(v, 0, y, chars[boxV], style)
		paint(v, w-1, y, chars[boxV], style)
	}

	if title == "" || w < 5 {
		return
	}
	// " title " inset by one after the corner
	title = runewidth.Truncate(title, w-4, "…")
	x := 2
	paint(v, x-1, 0, ' ', style)
	for _, r := range title {
		paint(v, x, 0, r, style)
		for i := 1; i < runewidth.RuneWidth(r); i++ {
			paint(v, x+i, 0, 0, style)
		}
		x += max(runewidth.RuneWidth(r), 1)
	}
	paint(v, x, 0, ' ', style)
}
