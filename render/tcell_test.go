package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
	"github.com/lixenwraith/cellgrid/widget"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestTcell_Draw(t *testing.T) {
	s := simScreen(t, 4, 2)
	g := grid.Alloc(4, 2)
	style := terminal.StyleDefault.Foreground(terminal.Green).Bold(true)
	g.Set(1, 1, style.Cell('g'))

	require.NoError(t, NewTcell(s).Draw(g))

	r, _, st, _ := s.GetContent(1, 1)
	assert.Equal(t, 'g', r)
	fg, _, attrs := st.Decompose()
	assert.Equal(t, tcell.PaletteColor(2), fg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	r, _, _, _ = s.GetContent(0, 0)
	assert.Equal(t, ' ', r)
}

func TestTcellColor_RoundTrip(t *testing.T) {
	colors := []terminal.Color{
		terminal.Default,
		terminal.Red,
		terminal.BrightCyan,
		terminal.Palette(200),
		terminal.RGB(10, 20, 30),
	}
	for _, c := range colors {
		assert.Equal(t, c, FromTcellColor(TcellColor(c)), "%+v", c)
	}
}

func TestTcellStyle_RoundTrip(t *testing.T) {
	s := terminal.StyleDefault.
		Foreground(terminal.RGB(1, 2, 3)).
		Background(terminal.Palette(100)).
		Bold(true).Reverse(true).Strike(true)
	assert.Equal(t, s, FromTcellStyle(TcellStyle(s)))
}

func TestScreen_Drawable(t *testing.T) {
	s := simScreen(t, 10, 3)
	scr := NewScreen(s)
	assert.Equal(t, 10, scr.Width())
	assert.Equal(t, 3, scr.Height())

	require.NoError(t, widget.Draw(widget.Center(widget.NewText("hey")), scr))

	c, ok := scr.At(3, 1)
	require.True(t, ok)
	assert.Equal(t, 'h', c.Rune)

	_, ok = scr.At(10, 0)
	assert.False(t, ok)
}
