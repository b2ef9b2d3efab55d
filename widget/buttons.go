package widget

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Buttons is a single-row choice between labels separated by Gap cells
// Left, Right, Tab and Backtab move the selection; Enter or a click on a
// label confirms it and ends the widget's lifecycle
type Buttons struct {
	Labels        []string
	Selected      int
	Gap           int
	Style         terminal.Style
	SelectedStyle terminal.Style
	Confirmed     bool
}

// NewButtons creates a button row with the first label selected
func NewButtons(labels ...string) *Buttons {
	return &Buttons{
		Labels:        labels,
		Gap:           1,
		SelectedStyle: terminal.StyleDefault.Reverse(true),
	}
}

// SelectLast selects the last label and returns b for chaining
func (b *Buttons) SelectLast() *Buttons {
	b.Selected = max(len(b.Labels)-1, 0)
	return b
}

// Choice returns the selected label, or "" with no labels
func (b *Buttons) Choice() string {
	if b.Selected < 0 || b.Selected >= len(b.Labels) {
		return ""
	}
	return b.Labels[b.Selected]
}

// span returns the column range [start, end) of label i
func (b *Buttons) span(i int) (start, end int) {
	gap := max(b.Gap, 0)
	for j := 0; j < i; j++ {
		start += runewidth.StringWidth(b.Labels[j]) + gap
	}
	return start, start + runewidth.StringWidth(b.Labels[i])
}

func (b *Buttons) width() int {
	if len(b.Labels) == 0 {
		return 0
	}
	_, end := b.span(len(b.Labels) - 1)
	return end
}

func (b *Buttons) Render(dst grid.Drawable, bounds grid.Rect) error {
	v := grid.Of(dst, bounds)
	if v.Height() == 0 {
		return nil
	}
	for i, label := range b.Labels {
		style := b.Style
		if i == b.Selected {
			style = b.SelectedStyle
		}
		x, _ := b.span(i)
		for _, r := range label {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if x+w > v.Width() {
				return nil
			}
			paint(v, x, 0, r, style)
			if w == 2 {
				paint(v, x+1, 0, 0, style)
			}
			x += w
		}
	}
	return nil
}

func (b *Buttons) Update(ev event.Event, screen grid.ReadOnly) (Result, error) {
	n := len(b.Labels)
	if n == 0 || b.Confirmed {
		return NoEvent, nil
	}
	switch ev.Type {
	case event.TypeKey:
		if ev.State == event.StateUp {
			return NoEvent, nil
		}
		switch ev.Key {
		case event.KeyLeft, event.KeyBacktab:
			b.Selected = (b.Selected + n - 1) % n
			return Interacted, nil
		case event.KeyRight, event.KeyTab:
			b.Selected = (b.Selected + 1) % n
			return Interacted, nil
		case event.KeyEnter, event.KeySpace:
			b.Confirmed = true
			return LifecycleEnd, nil
		}
	case event.TypeClick:
		if ev.Y != 0 || ev.Button != event.ButtonPrimary {
			return NoEvent, nil
		}
		for i := range b.Labels {
			if start, end := b.span(i); ev.X >= start && ev.X < end {
				b.Selected = i
				b.Confirmed = true
				return LifecycleEnd, nil
			}
		}
	}
	return NoEvent, nil
}

// BoundingBox is one row as wide as the labels and gaps
func (b *Buttons) BoundingBox(avail grid.Rect) grid.Rect {
	h := 1
	if len(b.Labels) == 0 {
		h = 0
	}
	return grid.NewRect(avail.X, avail.Y, b.width(), h).Intersect(avail)
}
