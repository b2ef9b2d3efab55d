package main

import (
	"github.com/lixenwraith/cellgrid/config"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
	"github.com/lixenwraith/cellgrid/vmath"
	"github.com/lixenwraith/cellgrid/widget"
)

const longText = "Here's some really long text that will probably, or at least I hope, " +
	"wrap around when drawn on the left side of the terminal! It even has some " +
	"extra padding to add space! Wow, isn't that cool!?"

// page is one demo screen
type page struct {
	name string
	root widget.Widget
	// buttons is set on pages that end when a choice is confirmed
	buttons *widget.Buttons
}

var pageNames = []string{"prompt", "stacking", "split"}

func pageIndex(name string) int {
	for i, n := range pageNames {
		if n == name {
			return i
		}
	}
	return -1
}

// buildPage assembles the named page from the theme and features
func buildPage(name string, cfg *config.Config, pal config.Palette) page {
	if !cfg.Features.BuiltinWidgets {
		return page{name: name, root: titleOnly(name)}
	}
	switch name {
	case "stacking":
		return stackingPage(pal)
	case "split":
		return splitPage(pal, cfg.Features.ExtendedMath)
	default:
		return promptPage(pal)
	}
}

func promptPage(pal config.Palette) page {
	text := terminal.StyleDefault.Foreground(pal.Foreground)

	buttons := widget.NewButtons(" Yes ", " No ").SelectLast()
	buttons.Style = text
	buttons.SelectedStyle = terminal.StyleDefault.
		Foreground(pal.Background).
		Background(pal.Accent).
		Bold(true)

	query := widget.WithMargin(1, widget.NewText("Continue?").Styled(text))
	prompt := widget.Stack(query, buttons)

	backdrop := terminal.Blend(pal.Background, pal.Accent, 0.25)

	return page{
		name: "prompt",
		root: layers(
			widget.Sweep(pal.Background),
			widget.Center(widget.OnBackdrop(backdrop, prompt)),
		),
		buttons: buttons,
	}
}

func stackingPage(pal config.Palette) page {
	text := terminal.StyleDefault.Foreground(pal.Foreground)
	stacked := widget.Stack(
		widget.NewText("Top widget").Styled(text),
		widget.NewText("Middle widget").Styled(text),
		widget.NewText("Bottom widget").Styled(text.Background(terminal.Red)),
	)
	return page{
		name: "stacking",
		root: layers(
			widget.Sweep(terminal.Cyan),
			widget.Center(widget.Shrink(stacked)),
		),
	}
}

func splitPage(pal config.Palette, extended bool) page {
	text := terminal.StyleDefault.Foreground(pal.Foreground)
	left := layers(
		widget.Sweep(terminal.Magenta),
		widget.WithMargin(2, widget.Sweep(terminal.Blue)),
		widget.WithMargin(2, widget.NewText(longText).Styled(text)),
	)
	right := layers(
		widget.Sweep(terminal.Yellow),
		widget.WithMargin(2, widget.Sweep(terminal.Blue)),
		widget.WithMargin(2, widget.NewText("The guy next to me is too loud...").Styled(text)),
	)

	return page{
		name: "split",
		root: widget.Func(func(v grid.View) error {
			var l, r grid.View
			if extended {
				l, r = grid.SplitHQ(v, vmath.Ratio(1, 2))
			} else {
				l, r = grid.SplitH(v, 0.5)
			}
			if err := widget.Draw(left, l); err != nil {
				return err
			}
			return widget.Draw(right, r)
		}),
	}
}

// titleOnly draws the page name without the text fixtures
func titleOnly(name string) widget.Widget {
	return widget.Func(func(v grid.View) error {
		for x, r := range name {
			v.Set(x, 0, terminal.Cell{Rune: r})
		}
		return nil
	})
}

// layered renders its widgets over the same area in order
// Every layer sees each event, topmost first
type layered []widget.Widget

func layers(ws ...widget.Widget) layered {
	return layered(ws)
}

func (l layered) Render(dst grid.Drawable, bounds grid.Rect) error {
	for _, w := range l {
		if err := w.Render(dst, bounds); err != nil {
			return err
		}
	}
	return nil
}

func (l layered) Update(ev event.Event, screen grid.ReadOnly) (widget.Result, error) {
	res := widget.NoEvent
	for i := len(l) - 1; i >= 0; i-- {
		r, err := l[i].Update(ev, screen)
		if err != nil {
			return res, err
		}
		res = widget.Max(res, r)
	}
	return res, nil
}
