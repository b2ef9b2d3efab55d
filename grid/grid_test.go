package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellgrid/terminal"
)

func cell(r rune) terminal.Cell {
	return terminal.Cell{Rune: r}
}

func TestGrid_ReadWrite(t *testing.T) {
	var buf [4 * 3]terminal.Cell
	g, err := New(buf[:], 4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())

	g.Set(1, 2, cell('x'))
	got, ok := g.At(1, 2)
	require.True(t, ok)
	assert.Equal(t, cell('x'), got)
	assert.Equal(t, cell('x'), buf[2*4+1], "grid writes through caller storage")

	fresh, ok := g.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, terminal.CellBlank, fresh)
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := Alloc(3, 2)
	before := append([]terminal.Cell(nil), g.Cells()...)

	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {100, 100}}
	for _, c := range coords {
		_, ok := g.At(c[0], c[1])
		assert.False(t, ok, "read at %v", c)
		g.Set(c[0], c[1], cell('!'))
	}
	assert.Equal(t, before, g.Cells(), "out-of-range writes must be dropped")
}

func TestGrid_ZeroSize(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.Width())
	assert.Equal(t, 0, g.Height())
	_, ok := g.At(0, 0)
	assert.False(t, ok)
	g.Set(0, 0, cell('a'))
	g.Fill(cell('a'))
	assert.Empty(t, g.Cells())
}

func TestGrid_Capacity(t *testing.T) {
	var buf [12]terminal.Cell

	_, err := New(buf[:], 5, 3)
	assert.ErrorIs(t, err, ErrCapacity)

	_, err = New(buf[:], -1, 3)
	assert.ErrorIs(t, err, ErrInvalidSize)

	g, err := New(buf[:], 6, 2)
	require.NoError(t, err)

	require.NoError(t, g.Resize(3, 4))
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Len(t, g.Cells(), 12)

	assert.ErrorIs(t, g.Resize(4, 4), ErrCapacity)
	assert.Equal(t, 3, g.Width(), "failed resize keeps dimensions")
	assert.Equal(t, 12, g.Capacity())
}

func TestGrid_FillAndRows(t *testing.T) {
	g := Alloc(5, 3)
	g.Fill(cell('#'))
	for _, c := range g.Cells() {
		assert.Equal(t, cell('#'), c)
	}

	g.Set(2, 1, cell('o'))
	row := g.Row(1)
	require.Len(t, row, 5)
	assert.Equal(t, cell('o'), row[2])
	assert.Nil(t, g.Row(3))

	g.Clear()
	for _, c := range g.Cells() {
		assert.Equal(t, terminal.CellBlank, c)
	}
}

func TestGrid_CopyRect(t *testing.T) {
	g := Alloc(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.Set(x, y, cell(rune('a'+y*4+x)))
		}
	}

	var dst [4]terminal.Cell
	require.NoError(t, g.CopyRect(NewRect(1, 1, 2, 2), dst[:]))
	assert.Equal(t, []terminal.Cell{cell('f'), cell('g'), cell('j'), cell('k')}, dst[:])

	assert.ErrorIs(t, g.CopyRect(NewRect(3, 3, 2, 2), dst[:]), ErrOutOfBounds)
	assert.ErrorIs(t, g.CopyRect(NewRect(0, 0, 3, 3), dst[:]), ErrCapacity)
}
