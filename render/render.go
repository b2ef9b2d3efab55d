package render

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cellgrid/grid"
	"github.com/lixenwraith/cellgrid/terminal"
)

// Renderer presents a grid to a display
// Draw reads src once, front to back; it never modifies it
type Renderer interface {
	Draw(src grid.ReadOnly) error
}

// FlushError reports an output failure, not retried
type FlushError struct {
	Written int64 // Bytes accepted by the writer before the failure
	Err     error
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("render: flush after %d bytes: %v", e.Written, e.Err)
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// countingWriter tracks bytes accepted by the underlying writer
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// cellWidth returns the columns a cell advances the cursor, at least one
func cellWidth(c terminal.Cell) int {
	if w := runewidth.RuneWidth(c.Printable()); w > 1 {
		return w
	}
	return 1
}

// covered reports whether x is the trailing half of a wide character drawn
// up to column end
func covered(c terminal.Cell, x, end int) bool {
	return x < end && c.Rune == 0
}
