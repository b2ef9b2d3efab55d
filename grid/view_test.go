package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellgrid/terminal"
)

func TestView_WriteThrough(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
	}{
		{"origin", NewRect(0, 0, 3, 2)},
		{"offset", NewRect(2, 1, 3, 3)},
		{"full", NewRect(0, 0, 6, 5)},
		{"single cell", NewRect(5, 4, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Alloc(6, 5)
			v := Of(g, tt.r)
			require.Equal(t, tt.r.W, v.Width())
			require.Equal(t, tt.r.H, v.Height())

			for y := 0; y < v.Height(); y++ {
				for x := 0; x < v.Width(); x++ {
					c := cell(rune('a' + y*v.Width() + x))
					v.Set(x, y, c)

					got, ok := g.At(tt.r.X+x, tt.r.Y+y)
					require.True(t, ok)
					assert.Equal(t, c, got)

					back, ok := v.At(x, y)
					require.True(t, ok)
					assert.Equal(t, c, back)
				}
			}

			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					if tt.r.Contains(x, y) {
						continue
					}
					got, _ := g.At(x, y)
					assert.Equal(t, terminal.CellBlank, got, "cell (%d,%d) outside view", x, y)
				}
			}
		})
	}
}

func TestView_Clipping(t *testing.T) {
	g := Alloc(4, 4)

	v := Of(g, NewRect(2, 2, 10, 10))
	assert.Equal(t, NewRect(2, 2, 2, 2), v.Rect(), "clipped to parent bounds")

	v.Set(2, 0, cell('x'))
	v.Set(-1, 0, cell('x'))
	for _, c := range g.Cells() {
		assert.Equal(t, terminal.CellBlank, c)
	}

	_, ok := v.At(2, 0)
	assert.False(t, ok)

	none := Of(g, NewRect(10, 10, 3, 3))
	assert.Equal(t, 0, none.Width())
	assert.Equal(t, 0, none.Height())
	none.Set(0, 0, cell('x'))
	none.Fill(cell('x'))
	for _, c := range g.Cells() {
		assert.Equal(t, terminal.CellBlank, c)
	}

	empty := Of(nil, NewRect(0, 0, 3, 3))
	assert.Equal(t, 0, empty.Width())
}

func TestView_Flatten(t *testing.T) {
	g := Alloc(10, 10)
	outer := Of(g, NewRect(2, 2, 6, 6))
	inner := Of(outer, NewRect(1, 1, 3, 3))
	deepest := inner.Sub(NewRect(1, 1, 10, 10))

	assert.Same(t, g, inner.Parent(), "nested views write to the root")
	assert.Equal(t, NewRect(3, 3, 3, 3), inner.Rect())
	assert.Equal(t, NewRect(4, 4, 2, 2), deepest.Rect(), "clipped to the enclosing view")

	deepest.Set(0, 0, cell('z'))
	got, _ := g.At(4, 4)
	assert.Equal(t, cell('z'), got)

	ptr := &outer
	viaPtr := Of(ptr, NewRect(0, 0, 1, 1))
	assert.Equal(t, NewRect(2, 2, 1, 1), viaPtr.Rect())
}

func TestView_Fill(t *testing.T) {
	g := Alloc(5, 3)
	Of(g, NewRect(1, 1, 3, 1)).Fill(cell('='))

	want := []rune("     " + " === " + "     ")
	for i, c := range g.Cells() {
		assert.Equal(t, want[i], c.Rune, "index %d", i)
	}
}

func TestReadView(t *testing.T) {
	g := Alloc(4, 4)
	g.Set(2, 3, cell('r'))

	rv := OfReadOnly(g, NewRect(1, 2, 3, 2))
	got, ok := rv.At(1, 1)
	require.True(t, ok)
	assert.Equal(t, cell('r'), got)

	v := Of(g, NewRect(1, 1, 3, 3))
	nested := OfReadOnly(v, NewRect(1, 2, 1, 1))
	assert.Equal(t, NewRect(2, 3, 1, 1), nested.Rect())
	got, ok = nested.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, cell('r'), got)

	_, ok = nested.At(1, 0)
	assert.False(t, ok)
}
