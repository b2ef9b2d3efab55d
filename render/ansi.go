package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// ANSI writes a grid as cursor-addressed text with SGR styling
//
// Every row starts with an absolute cursor move; further moves are emitted only
// where the tracked cursor column diverges from the next cell. Styles are
// emitted only on change, starting from the terminal default, and the stream
// ends with an SGR reset.
type ANSI struct {
	out   *countingWriter
	w     *bufio.Writer
	mode   terminal.ColorMode
	clear  bool
	hide   bool
	noWrap bool
}

// Option configures an ANSI renderer
type Option func(*ANSI)

// WithColorMode down-samples colors to mode, default is true color
func WithColorMode(mode terminal.ColorMode) Option {
	return func(a *ANSI) {
		a.mode = mode
	}
}

// WithClear emits a screen clear before every frame
func WithClear(on bool) Option {
	return func(a *ANSI) {
		a.clear = on
	}
}

// WithCursorHidden hides the cursor while a frame is written and shows it after
func WithCursorHidden(on bool) Option {
	return func(a *ANSI) {
		a.hide = on
	}
}

// WithNoWrap disables terminal auto-wrap while a frame is written so the
// bottom-right cell does not scroll the screen; wrapping is restored after
func WithNoWrap(on bool) Option {
	return func(a *ANSI) {
		a.noWrap = on
	}
}

// NewANSI creates an escape sequence renderer writing to w
func NewANSI(w io.Writer, opts ...Option) *ANSI {
	cw := &countingWriter{w: w}
	a := &ANSI{
		out:  cw,
		w:    bufio.NewWriterSize(cw, 64*1024),
		mode: terminal.ColorModeTrueColor,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ColorMode returns the mode colors are reduced to
func (a *ANSI) ColorMode() terminal.ColorMode {
	return a.mode
}

func (a *ANSI) Draw(src grid.ReadOnly) error {
	a.out.n = 0
	w := a.w

	if a.noWrap {
		w.Write(terminal.AutoWrapOff)
	}
	if a.hide {
		w.Write(terminal.CursorHide)
	}
	if a.clear {
		w.Write(terminal.ClearHome)
	}

	last := terminal.StyleDefault
	width, height := src.Width(), src.Height()
	for y := 0; y < height; y++ {
		cursorX := -1
		for x := 0; x < width; x++ {
			c, _ := src.At(x, y)
			if covered(c, x, cursorX) {
				continue
			}
			if x != cursorX {
				terminal.WriteCursorPos(w, x, y)
				cursorX = x
			}
			last = terminal.WriteSGR(w, last, c.Style, a.mode)

			r := c.Printable()
			if r < 0x80 {
				w.WriteByte(byte(r))
			} else {
				w.WriteRune(r)
			}
			cursorX += cellWidth(c)
		}
	}

	w.Write(terminal.SGRReset)
	if a.hide {
		w.Write(terminal.CursorShow)
	}
	if a.noWrap {
		w.Write(terminal.AutoWrapOn)
	}
	if err := w.Flush(); err != nil {
		w.Reset(a.out)
		return &FlushError{Written: a.out.n, Err: err}
	}
	return nil
}
