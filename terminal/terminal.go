package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrStrike    Attr = 1 << 6
)

// AttrStyle masks all defined attribute bits
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrStrike

// Has reports whether all bits of a are set
func (a Attr) Has(bits Attr) bool {
	return a&bits == bits
}

// Style is the display payload of a cell, opaque to layout
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// StyleDefault uses terminal default colors and no attributes
var StyleDefault = Style{}

// IsDefault returns true if the style emits no SGR codes
func (s Style) IsDefault() bool {
	return s == StyleDefault
}

// Foreground returns a copy with foreground set
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with background set
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Attributes returns a copy with the attribute set replaced
func (s Style) Attributes(a Attr) Style {
	s.Attrs = a & AttrStyle
	return s
}

func (s Style) with(a Attr, on bool) Style {
	if on {
		s.Attrs |= a
	} else {
		s.Attrs &^= a
	}
	return s
}

func (s Style) Bold(on bool) Style      { return s.with(AttrBold, on) }
func (s Style) Dim(on bool) Style       { return s.with(AttrDim, on) }
func (s Style) Italic(on bool) Style    { return s.with(AttrItalic, on) }
func (s Style) Underline(on bool) Style { return s.with(AttrUnderline, on) }
func (s Style) Blink(on bool) Style     { return s.with(AttrBlink, on) }
func (s Style) Reverse(on bool) Style   { return s.with(AttrReverse, on) }
func (s Style) Strike(on bool) Style    { return s.with(AttrStrike, on) }

// Cell returns a cell carrying this style
func (s Style) Cell(r rune) Cell {
	return Cell{Rune: r, Style: s}
}

// Cell represents a single character position
// Rune 0 is an empty cell, emitted as a space
type Cell struct {
	Rune rune
	Style
}

// CellBlank is a space with default style
var CellBlank = Cell{Rune: ' '}

// NewCell creates a cell from its parts
func NewCell(r rune, fg, bg Color, attrs Attr) Cell {
	return Cell{Rune: r, Style: Style{Fg: fg, Bg: bg, Attrs: attrs & AttrStyle}}
}

// Printable returns the rune to emit for the cell
func (c Cell) Printable() rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}
