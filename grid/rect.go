package grid

// Rect is an axis-aligned rectangle in a grid's coordinate space
// W and H are never negative; a zero-area Rect denotes nothing to draw
type Rect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// NewRect creates a rectangle, negative dimensions are clamped to zero
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Sized returns a rectangle of the given size at the origin
func Sized(w, h int) Rect {
	return NewRect(0, 0, w, h)
}

// RectOf builds a rectangle from two opposite corners given in any order
// The second corner is exclusive
func RectOf(x0, y0, x1, y1 int) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the X coordinate of the right edge (exclusive)
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge (exclusive)
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns W*H
func (r Rect) Area() int {
	return r.W * r.H
}

// Empty returns true if the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains checks if a point is within this rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect checks if other lies entirely inside r
// An empty rectangle is contained by any rectangle
func (r Rect) ContainsRect(other Rect) bool {
	if other.Empty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y && other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the largest rectangle contained in both
// Disjoint rectangles yield a zero-area rectangle anchored at the clipped origin
func (r Rect) Intersect(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())

	if x1 >= x2 || y1 >= y2 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Overlaps returns true if the rectangles share at least one cell
func (r Rect) Overlaps(other Rect) bool {
	return !r.Intersect(other).Empty()
}

// Union returns the smallest rectangle covering both, empty operands are ignored
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return RectOf(min(r.X, other.X), min(r.Y, other.Y), max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom()))
}

// Translate moves the rectangle by an offset
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// MoveTo places the top-left corner at (x, y), keeping the size
func (r Rect) MoveTo(x, y int) Rect {
	r.X = x
	r.Y = y
	return r
}

// Shrink removes the given amount from each side independently
// Negative amounts are treated as zero; width and height clamp at zero
func (r Rect) Shrink(top, right, bottom, left int) Rect {
	top, right, bottom, left = max(top, 0), max(right, 0), max(bottom, 0), max(left, 0)

	w := r.W - left - right
	h := r.H - top - bottom
	x := r.X + min(left, r.W)
	y := r.Y + min(top, r.H)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Inset shrinks by n on every side
func (r Rect) Inset(n int) Rect {
	return r.Shrink(n, n, n, n)
}

// Grow expands each side by the given amounts, negative amounts are ignored
func (r Rect) Grow(top, right, bottom, left int) Rect {
	top, right, bottom, left = max(top, 0), max(right, 0), max(bottom, 0), max(left, 0)
	return Rect{X: r.X - left, Y: r.Y - top, W: r.W + left + right, H: r.H + top + bottom}
}
