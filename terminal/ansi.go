// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	CSI       = []byte("\x1b[")
	SGRReset  = []byte("\x1b[0m")
	ClearHome = []byte("\x1b[2J\x1b[H")

	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// DECAWM: ?7l disables wrapping, preventing scroll when writing to the bottom-right corner
	AutoWrapOn  = []byte("\x1b[?7h")
	AutoWrapOff = []byte("\x1b[?7l")
)

// SGR parameter values
const (
	sgrReset     = 0
	sgrBold      = 1
	sgrDim       = 2
	sgrItalic    = 3
	sgrUnderline = 4
	sgrBlink     = 5
	sgrReverse   = 7
	sgrStrike    = 9
	sgrFgBase    = 30
	sgrBgBase    = 40
	sgrFgBright  = 90
	sgrBgBright  = 100
)

var attrCodes = [...]struct {
	attr Attr
	code byte
}{
	{AttrBold, sgrBold},
	{AttrDim, sgrDim},
	{AttrItalic, sgrItalic},
	{AttrUnderline, sgrUnderline},
	{AttrBlink, sgrBlink},
	{AttrReverse, sgrReverse},
	{AttrStrike, sgrStrike},
}

// WriteInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func WriteInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// WriteCursorPos writes a cursor positioning sequence (0-indexed input, 1-indexed output)
func WriteCursorPos(w *bufio.Writer, x, y int) {
	w.Write(CSI)
	WriteInt(w, y+1)
	w.WriteByte(';')
	WriteInt(w, x+1)
	w.WriteByte('H')
}

// WriteSGR emits the sequence switching the terminal from prev to next
// Nothing is written when the styles match after downsampling to mode
// Returns the style as the terminal now sees it
func WriteSGR(w *bufio.Writer, prev, next Style, mode ColorMode) Style {
	next.Fg = next.Fg.Downsample(mode)
	next.Bg = next.Bg.Downsample(mode)
	next.Attrs &= AttrStyle
	if next == prev {
		return prev
	}

	w.Write(CSI)
	first := true
	sep := func() {
		if !first {
			w.WriteByte(';')
		}
		first = false
	}

	// Any non-default previous state is dropped before applying next
	if !prev.IsDefault() {
		sep()
		WriteInt(w, sgrReset)
	}

	for _, ac := range attrCodes {
		if next.Attrs&ac.attr != 0 {
			sep()
			WriteInt(w, int(ac.code))
		}
	}

	if !next.Fg.IsDefault() {
		sep()
		writeColorParams(w, next.Fg, false)
	}
	if !next.Bg.IsDefault() {
		sep()
		writeColorParams(w, next.Bg, true)
	}

	w.WriteByte('m')
	return next
}

// writeColorParams writes color parameters (no CSI prefix, no 'm' suffix)
func writeColorParams(w *bufio.Writer, c Color, bg bool) {
	switch c.Kind {
	case ColorANSI:
		idx := int(c.R & 0x0F)
		bright := idx >= 8
		idx &= 7
		switch {
		case bg && bright:
			WriteInt(w, sgrBgBright+idx)
		case bg:
			WriteInt(w, sgrBgBase+idx)
		case bright:
			WriteInt(w, sgrFgBright+idx)
		default:
			WriteInt(w, sgrFgBase+idx)
		}
	case Color256:
		if bg {
			w.WriteString("48;5;")
		} else {
			w.WriteString("38;5;")
		}
		WriteInt(w, int(c.R))
	case ColorRGB:
		if bg {
			w.WriteString("48;2;")
		} else {
			w.WriteString("38;2;")
		}
		WriteInt(w, int(c.R))
		w.WriteByte(';')
		WriteInt(w, int(c.G))
		w.WriteByte(';')
		WriteInt(w, int(c.B))
	}
}
