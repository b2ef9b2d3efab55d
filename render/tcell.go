package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Tcell copies a grid onto a tcell screen and shows it
// Color reduction is left to tcell's own terminal detection
type Tcell struct {
	screen tcell.Screen
}

// NewTcell creates a renderer over an initialized screen
func NewTcell(s tcell.Screen) *Tcell {
	return &Tcell{screen: s}
}

func (t *Tcell) Draw(src grid.ReadOnly) error {
	width, height := src.Width(), src.Height()
	for y := 0; y < height; y++ {
		end := 0
		for x := 0; x < width; x++ {
			c, _ := src.At(x, y)
			if covered(c, x, end) {
				continue
			}
			t.screen.SetContent(x, y, c.Printable(), nil, TcellStyle(c.Style))
			end = x + cellWidth(c)
		}
	}
	t.screen.Show()
	return nil
}

// TcellColor converts a cell color to tcell
func TcellColor(c terminal.Color) tcell.Color {
	switch c.Kind {
	case terminal.ColorANSI, terminal.Color256:
		return tcell.PaletteColor(int(c.R))
	case terminal.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}

// FromTcellColor converts a tcell color back to a cell color
func FromTcellColor(c tcell.Color) terminal.Color {
	switch {
	case c == tcell.ColorDefault || !c.Valid():
		return terminal.Default
	case c.IsRGB():
		r, g, b := c.RGB()
		return terminal.RGB(uint8(r), uint8(g), uint8(b))
	}
	idx := int(c - tcell.ColorBlack)
	if idx < 16 {
		return terminal.ANSI(uint8(idx))
	}
	return terminal.Palette(uint8(idx))
}

// TcellStyle converts a cell style to tcell
func TcellStyle(s terminal.Style) tcell.Style {
	a := s.Attrs
	return tcell.StyleDefault.
		Foreground(TcellColor(s.Fg)).
		Background(TcellColor(s.Bg)).
		Bold(a.Has(terminal.AttrBold)).
		Dim(a.Has(terminal.AttrDim)).
		Italic(a.Has(terminal.AttrItalic)).
		Underline(a.Has(terminal.AttrUnderline)).
		Blink(a.Has(terminal.AttrBlink)).
		Reverse(a.Has(terminal.AttrReverse)).
		StrikeThrough(a.Has(terminal.AttrStrike))
}

// FromTcellStyle converts a tcell style back to a cell style
func FromTcellStyle(st tcell.Style) terminal.Style {
	fg, bg, am := st.Decompose()
	var a terminal.Attr
	for _, m := range [...]struct {
		t tcell.AttrMask
		a terminal.Attr
	}{
		{tcell.AttrBold, terminal.AttrBold},
		{tcell.AttrDim, terminal.AttrDim},
		{tcell.AttrItalic, terminal.AttrItalic},
		{tcell.AttrUnderline, terminal.AttrUnderline},
		{tcell.AttrBlink, terminal.AttrBlink},
		{tcell.AttrReverse, terminal.AttrReverse},
		{tcell.AttrStrikeThrough, terminal.AttrStrike},
	} {
		if am&m.t != 0 {
			a |= m.a
		}
	}
	return terminal.Style{Fg: FromTcellColor(fg), Bg: FromTcellColor(bg), Attrs: a}
}

// Screen exposes a tcell screen as a grid.Drawable so widgets can paint it directly
// Combining runes are dropped
type Screen struct {
	screen tcell.Screen
}

// NewScreen wraps s
func NewScreen(s tcell.Screen) Screen {
	return Screen{screen: s}
}

func (s Screen) Width() int {
	w, _ := s.screen.Size()
	return w
}

func (s Screen) Height() int {
	_, h := s.screen.Size()
	return h
}

func (s Screen) At(x, y int) (terminal.Cell, bool) {
	w, h := s.screen.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return terminal.Cell{}, false
	}
	r, _, st, _ := s.screen.GetContent(x, y)
	return terminal.Cell{Rune: r, Style: FromTcellStyle(st)}, true
}

func (s Screen) Set(x, y int, c terminal.Cell) {
	s.screen.SetContent(x, y, c.Printable(), nil, TcellStyle(c.Style))
}
