package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		set      func(g *grid.Grid)
		expected string
	}{
		{"empty", 0, 0, func(*grid.Grid) {}, ""},
		{"blank rows", 2, 2, func(*grid.Grid) {}, "  \n  "},
		{"styles ignored", 3, 1, func(g *grid.Grid) {
			g.Set(1, 0, terminal.StyleDefault.Foreground(terminal.Red).Bold(true).Cell('r'))
		}, " r "},
		{"zero rune is space", 2, 1, func(g *grid.Grid) {
			g.Set(0, 0, terminal.Cell{})
			g.Set(1, 0, terminal.Cell{Rune: 'z'})
		}, " z"},
		{"wide rune", 3, 1, func(g *grid.Grid) {
			g.Set(0, 0, terminal.Cell{Rune: '日'})
			g.Set(1, 0, terminal.Cell{})
			g.Set(2, 0, terminal.Cell{Rune: 'a'})
		}, "日a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := grid.Alloc(tt.w, tt.h)
			tt.set(g)
			var buf bytes.Buffer
			require.NoError(t, NewDirect(&buf).Draw(g))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestDirect_View(t *testing.T) {
	g := grid.Alloc(4, 3)
	g.Set(2, 1, terminal.Cell{Rune: 'v'})

	var buf bytes.Buffer
	require.NoError(t, NewDirect(&buf).Draw(grid.OfReadOnly(g, grid.NewRect(1, 1, 2, 2))))
	assert.Equal(t, " v\n  ", buf.String())
}

func TestDirect_FlushError(t *testing.T) {
	err := NewDirect(&failWriter{limit: 0}).Draw(grid.Alloc(2, 2))
	var fe *FlushError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, int64(0), fe.Written)
	assert.ErrorIs(t, err, errDisk)
}
