package grid

import (
	"fmt"

	"github.com/lixenwraith/cellgrid/terminal"
)

// Metadata reports the dimensions of a cell surface
type Metadata interface {
	Width() int
	Height() int
}

// CellReader fetches cells, ok is false outside [0,Width)x[0,Height)
type CellReader interface {
	At(x, y int) (terminal.Cell, bool)
}

// CellWriter stores cells, writes outside the surface are dropped
type CellWriter interface {
	Set(x, y int, c terminal.Cell)
}

// ReadOnly is a surface that can be inspected but not drawn on
type ReadOnly interface {
	Metadata
	CellReader
}

// Drawable is any surface offering dimensions, reads and writes
type Drawable interface {
	Metadata
	CellReader
	CellWriter
}

// Bounds returns the surface rectangle at the origin
func Bounds(m Metadata) Rect {
	if m == nil {
		return Rect{}
	}
	return Sized(m.Width(), m.Height())
}

// Grid is a fixed-capacity row-major cell array over caller-owned storage
// The zero value is a valid 0x0 grid; use Init to attach storage
type Grid struct {
	cells  []terminal.Cell
	width  int
	height int
	claims claimTable
}

// New creates a grid over buf, buf must hold at least w*h cells
func New(buf []terminal.Cell, w, h int) (*Grid, error) {
	g := &Grid{}
	if err := g.Init(buf, w, h); err != nil {
		return nil, err
	}
	return g, nil
}

// Alloc creates a grid with heap-backed storage of exactly w*h cells
func Alloc(w, h int) *Grid {
	w, h = max(w, 0), max(h, 0)
	g := &Grid{}
	// Cannot fail: storage is sized to the request
	_ = g.Init(make([]terminal.Cell, w*h), w, h)
	return g
}

// Init attaches storage to the grid and clears it to blank cells
// Live claims are dropped
func (g *Grid) Init(buf []terminal.Cell, w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w*h > len(buf) {
		return fmt.Errorf("%w: %dx%d needs %d cells, have %d", ErrCapacity, w, h, w*h, len(buf))
	}
	g.cells = buf
	g.width = w
	g.height = h
	g.claims.reset()
	g.Clear()
	return nil
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Capacity returns the number of cells the storage can hold
func (g *Grid) Capacity() int {
	return len(g.cells)
}

// inBounds returns true if in grid bounds
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y)
func (g *Grid) At(x, y int) (terminal.Cell, bool) {
	if !g.inBounds(x, y) {
		return terminal.Cell{}, false
	}
	return g.cells[y*g.width+x], true
}

// Set stores the cell at (x, y), silently clipped
func (g *Grid) Set(x, y int, c terminal.Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Resize changes the active dimensions within capacity and clears the grid
// Live claims are dropped since their rectangles refer to the old layout
func (g *Grid) Resize(w, h int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w*h > len(g.cells) {
		return fmt.Errorf("%w: %dx%d needs %d cells, have %d", ErrCapacity, w, h, w*h, len(g.cells))
	}
	g.width = w
	g.height = h
	g.claims.reset()
	g.Clear()
	return nil
}

// Fill sets every active cell to c using exponential copy
func (g *Grid) Fill(c terminal.Cell) {
	active := g.Cells()
	if len(active) == 0 {
		return
	}
	active[0] = c
	for filled := 1; filled < len(active); filled *= 2 {
		copy(active[filled:], active[:filled])
	}
}

// Clear resets all active cells to blank
func (g *Grid) Clear() {
	g.Fill(terminal.CellBlank)
}

// Cells returns the active cells row-major: cells[y*Width()+x]
func (g *Grid) Cells() []terminal.Cell {
	return g.cells[:g.width*g.height]
}

// Row returns the active cells of row y, nil when out of range
func (g *Grid) Row(y int) []terminal.Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	start := y * g.width
	return g.cells[start : start+g.width]
}

// CopyRect copies the cells of r row-major into dst
// r must lie inside the grid and dst must hold r.Area() cells
func (g *Grid) CopyRect(r Rect, dst []terminal.Cell) error {
	if !Bounds(g).ContainsRect(r) {
		return fmt.Errorf("%w: %+v outside %dx%d", ErrOutOfBounds, r, g.width, g.height)
	}
	if len(dst) < r.Area() {
		return fmt.Errorf("%w: copy of %+v needs %d cells, have %d", ErrCapacity, r, r.Area(), len(dst))
	}
	for row := 0; row < r.H; row++ {
		src := g.Row(r.Y + row)[r.X:r.Right()]
		copy(dst[row*r.W:], src)
	}
	return nil
}
