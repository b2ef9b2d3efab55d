package widget

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Text is a block of styled text word-wrapped to its bounds by display width
// Explicit newlines start a new line; wide characters take two cells
// A default background shows whatever is underneath
type Text struct {
	Content string
	Style   terminal.Style
	// Strict makes Render fail with ErrTextOverflow instead of clipping
	Strict bool
}

// NewText creates default-styled text
func NewText(s string) *Text {
	return &Text{Content: s}
}

// Styled sets the style and returns t for chaining
func (t *Text) Styled(s terminal.Style) *Text {
	t.Style = s
	return t
}

func (t *Text) Render(dst grid.Drawable, bounds grid.Rect) error {
	v := grid.Of(dst, bounds)
	overflow := false
	layoutText(t.Content, v.Width(), func(x, y int, cluster string, w int) {
		if y >= v.Height() {
			overflow = true
			return
		}
		r, _ := firstRune(cluster)
		paint(v, x, y, r, t.Style)
		// Trailing half of a wide character, skipped by renderers
		for i := 1; i < w; i++ {
			paint(v, x+i, y, 0, t.Style)
		}
	})
	if overflow && t.Strict {
		return fmt.Errorf("%w: %q in %dx%d", ErrTextOverflow, truncate(t.Content, 16), v.Width(), v.Height())
	}
	return nil
}

// Update reports a primary click on the painted text as an interaction
func (t *Text) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	if ev.Button == event.ButtonPrimary && ev.Inside(t.BoundingBox(grid.Bounds(screen))) {
		return Interacted, nil
	}
	return NoEvent, nil
}

// BoundingBox is the widest wrapped line by the number of lines, at avail's origin
func (t *Text) BoundingBox(avail grid.Rect) grid.Rect {
	w, h := t.Measure(avail.W)
	return grid.NewRect(avail.X, avail.Y, w, h).Intersect(avail)
}

// Covers reports whether the wrapped text paints at least r.Area() cells
func (t *Text) Covers(r grid.Rect) bool {
	n := 0
	layoutText(t.Content, r.W, func(_, y int, _ string, w int) {
		if y < r.H {
			n += w
		}
	})
	return n >= r.Area()
}

// Measure returns the size of the text wrapped to width
func (t *Text) Measure(width int) (w, h int) {
	layoutText(t.Content, width, func(x, y int, _ string, cw int) {
		w = max(w, x+cw)
		h = max(h, y+1)
	})
	return w, h
}

// layoutText walks the grapheme clusters of s placed greedily into lines of
// width cells, breaking at spaces where possible and inside words otherwise
// Clusters wider than the line are dropped
func layoutText(s string, width int, emit func(x, y int, cluster string, w int)) {
	if width <= 0 {
		return
	}
	y := 0
	for pi, para := range strings.Split(s, "\n") {
		if pi > 0 {
			y++
		}
		x := 0
		for wi, word := range strings.Split(para, " ") {
			ww := runewidth.StringWidth(word)
			if wi > 0 {
				switch {
				case x > 0 && x+1+ww > width && ww <= width:
					x = 0
					y++
				case x+1 <= width:
					emit(x, y, " ", 1)
					x++
				}
			}
			g := uniseg.NewGraphemes(word)
			for g.Next() {
				cluster := g.Str()
				cw := runewidth.StringWidth(cluster)
				if cw == 0 || cw > width {
					continue
				}
				if x+cw > width {
					x = 0
					y++
				}
				emit(x, y, cluster, cw)
				x += cw
			}
		}
	}
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "…")
}
