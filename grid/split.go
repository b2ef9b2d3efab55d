package grid

import (
	"math"

	"github.com/lixenwraith/cellgrid/vmath"
)

// Axis selects the dimension a split partitions
type Axis uint8

const (
	Horizontal Axis = iota // Partitions width: left | right
	Vertical               // Partitions height: top / bottom
)

// SplitPoint returns floor(length*ratio) with ratio clamped to [0,1]
// NaN ratios split at 0
func SplitPoint(length int, ratio float64) int {
	if length <= 0 || math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return length
	}
	p := int(math.Floor(float64(length) * ratio))
	return clampOffset(p, length)
}

// SplitPointQ is SplitPoint for a Q32.32 ratio, integer arithmetic only
func SplitPointQ(length int, ratio int64) int {
	if length <= 0 || ratio <= 0 {
		return 0
	}
	if ratio >= vmath.Scale {
		return length
	}
	return clampOffset(vmath.ToInt(vmath.Mul(vmath.FromInt(length), ratio)), length)
}

func clampOffset(offset, length int) int {
	if offset < 0 {
		return 0
	}
	if offset > length {
		return length
	}
	return offset
}

// SplitAt partitions d along axis at an absolute offset clamped to [0, length]
// The two views tile d exactly with no gap and no overlap
func SplitAt(d Drawable, axis Axis, offset int) (first, second View) {
	w, h := 0, 0
	if d != nil {
		w, h = d.Width(), d.Height()
	}
	if axis == Horizontal {
		offset = clampOffset(offset, w)
		return Of(d, NewRect(0, 0, offset, h)), Of(d, NewRect(offset, 0, w-offset, h))
	}
	offset = clampOffset(offset, h)
	return Of(d, NewRect(0, 0, w, offset)), Of(d, NewRect(0, offset, w, h-offset))
}

// Split partitions d along axis at floor(length*ratio), remainder to the second view
func Split(d Drawable, axis Axis, ratio float64) (first, second View) {
	return SplitAt(d, axis, SplitPoint(axisLength(d, axis), ratio))
}

// SplitQ partitions d along axis at a Q32.32 ratio
func SplitQ(d Drawable, axis Axis, ratio int64) (first, second View) {
	return SplitAt(d, axis, SplitPointQ(axisLength(d, axis), ratio))
}

// SplitH splits into left and right by ratio
func SplitH(d Drawable, ratio float64) (left, right View) {
	return Split(d, Horizontal, ratio)
}

// SplitV splits into top and bottom by ratio
func SplitV(d Drawable, ratio float64) (top, bottom View) {
	return Split(d, Vertical, ratio)
}

// SplitHQ splits into left and right by a Q32.32 ratio
func SplitHQ(d Drawable, ratio int64) (left, right View) {
	return SplitQ(d, Horizontal, ratio)
}

// SplitVQ splits into top and bottom by a Q32.32 ratio
func SplitVQ(d Drawable, ratio int64) (top, bottom View) {
	return SplitQ(d, Vertical, ratio)
}

// SplitHAt splits with fixed left width, rest to right
func SplitHAt(d Drawable, leftW int) (left, right View) {
	return SplitAt(d, Horizontal, leftW)
}

// SplitVAt splits with fixed top height, rest to bottom
func SplitVAt(d Drawable, topH int) (top, bottom View) {
	return SplitAt(d, Vertical, topH)
}

// SplitWeights partitions d along axis into len(weights) adjacent views
// Boundaries are floor(length*cumulative/total) so rounding accrues to trailing views
// Views are appended to dst[:0]; pass a dst with enough capacity to avoid allocation
// Non-positive weights yield zero-length views; an all-zero set gives everything to the last view
func SplitWeights(d Drawable, axis Axis, weights []int, dst []View) []View {
	dst = dst[:0]
	if len(weights) == 0 {
		return dst
	}
	length := axisLength(d, axis)

	var total int64
	for _, wt := range weights {
		if wt > 0 {
			total += int64(wt)
		}
	}

	prev := 0
	var cum int64
	for i, wt := range weights {
		if wt > 0 {
			cum += int64(wt)
		}
		next := length
		if i < len(weights)-1 {
			if total == 0 {
				next = 0
			} else {
				next = int(vmath.MulDiv(int64(length), cum, total))
			}
		}
		next = clampOffset(next, length)
		if next < prev {
			next = prev
		}
		if axis == Horizontal {
			dst = append(dst, Of(d, NewRect(prev, 0, next-prev, heightOf(d))))
		} else {
			dst = append(dst, Of(d, NewRect(0, prev, widthOf(d), next-prev)))
		}
		prev = next
	}
	return dst
}

// Center returns a rectangle of size w x h centered in outer, clipped to outer
// Odd remainders are left on the trailing (right/bottom) side
func Center(outer Rect, w, h int) Rect {
	w = min(max(w, 0), outer.W)
	h = min(max(h, 0), outer.H)
	x := outer.X + (outer.W-w)/2
	y := outer.Y + (outer.H-h)/2
	return Rect{X: x, Y: y, W: w, H: h}
}

func axisLength(d Drawable, axis Axis) int {
	if axis == Horizontal {
		return widthOf(d)
	}
	return heightOf(d)
}

func widthOf(d Drawable) int {
	if d == nil {
		return 0
	}
	return d.Width()
}

func heightOf(d Drawable) int {
	if d == nil {
		return 0
	}
	return d.Height()
}
