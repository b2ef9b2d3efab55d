package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/cellgrid/grid"
)

// Direct writes the characters of each row with no styling, rows separated by '\n'
type Direct struct {
	out *countingWriter
	w   *bufio.Writer
}

// NewDirect creates a plain text renderer writing to w
func NewDirect(w io.Writer) *Direct {
	cw := &countingWriter{w: w}
	return &Direct{out: cw, w: bufio.NewWriter(cw)}
}

func (d *Direct) Draw(src grid.ReadOnly) error {
	d.out.n = 0
	width, height := src.Width(), src.Height()
	for y := 0; y < height; y++ {
		if y > 0 {
			d.w.WriteByte('\n')
		}
		end := 0
		for x := 0; x < width; x++ {
			c, _ := src.At(x, y)
			if covered(c, x, end) {
				continue
			}
			d.w.WriteRune(c.Printable())
			end = x + cellWidth(c)
		}
	}
	if err := d.w.Flush(); err != nil {
		d.w.Reset(d.out)
		return &FlushError{Written: d.out.n, Err: err}
	}
	return nil
}
