package grid

import "github.com/lixenwraith/cellgrid/terminal"

// View is a non-owning window onto a rectangle of a Drawable
// Coordinates are local: (0,0) is the top-left of the window
// Views of views are flattened onto the root surface at construction
type View struct {
	parent Drawable
	rect   Rect // In parent coordinates, clipped to parent bounds

	table   *claimTable
	claimID uint32 // Nearest claim in the ancestry, 0 if none
	owns    bool   // True if this view holds claimID
}

// Of returns a view of r within parent, clipped to parent bounds
// A rectangle with no overlap yields an inert zero-area view, and so does one
// overlapping a live claim on the root grid that parent does not descend from
func Of(parent Drawable, r Rect) View {
	return of(parent, r).checked()
}

// of builds the view without consulting the claim table
func of(parent Drawable, r Rect) View {
	switch p := parent.(type) {
	case nil:
		return View{}
	case View:
		return p.sub(r)
	case *View:
		if p == nil {
			return View{}
		}
		return p.sub(r)
	case *Grid:
		if p == nil {
			return View{}
		}
		return View{parent: p, rect: r.Intersect(Bounds(p)), table: &p.claims}
	}
	return View{parent: parent, rect: r.Intersect(Bounds(parent))}
}

func (v View) sub(r Rect) View {
	local := r.Intersect(Sized(v.rect.W, v.rect.H))
	return View{
		parent:  v.parent,
		rect:    local.Translate(v.rect.X, v.rect.Y),
		table:   v.table,
		claimID: v.claimID,
	}
}

// checked replaces v with an inert view when it aliases a claim it does not descend from
func (v View) checked() View {
	if v.table != nil && v.table.conflict(v.rect, v.claimID, false) != nil {
		return View{}
	}
	return v
}

// Sub returns a nested view with coordinates relative to this view
// Sub-views follow the same claim rule as Of
func (v View) Sub(r Rect) View {
	return v.sub(r).checked()
}

// Width returns view width
func (v View) Width() int {
	return v.rect.W
}

// Height returns view height
func (v View) Height() int {
	return v.rect.H
}

// Rect returns the view rectangle in root coordinates
func (v View) Rect() Rect {
	return v.rect
}

// Parent returns the root surface the view writes through
func (v View) Parent() Drawable {
	return v.parent
}

// At returns the cell at local (x, y)
func (v View) At(x, y int) (terminal.Cell, bool) {
	if x < 0 || x >= v.rect.W || y < 0 || y >= v.rect.H {
		return terminal.Cell{}, false
	}
	return v.parent.At(v.rect.X+x, v.rect.Y+y)
}

// Set stores the cell at local (x, y), silently clipped to the view
func (v View) Set(x, y int, c terminal.Cell) {
	if x < 0 || x >= v.rect.W || y < 0 || y >= v.rect.H {
		return
	}
	v.parent.Set(v.rect.X+x, v.rect.Y+y, c)
}

// Fill sets every cell of the view to c
func (v View) Fill(c terminal.Cell) {
	for y := 0; y < v.rect.H; y++ {
		for x := 0; x < v.rect.W; x++ {
			v.parent.Set(v.rect.X+x, v.rect.Y+y, c)
		}
	}
}

// Claimed returns true if the view holds a live claim on its root grid
func (v View) Claimed() bool {
	return v.owns && v.table != nil && v.table.live(v.claimID)
}

// Release returns the view's claim and the claims of views derived from it
// Safe to call multiple times and on unclaimed views
func (v View) Release() {
	if v.owns && v.table != nil {
		v.table.release(v.claimID)
	}
}

// ReadView is the read-only counterpart of View
type ReadView struct {
	parent ReadOnly
	rect   Rect

	table   *claimTable
	claimID uint32
	owns    bool
}

// OfReadOnly returns a read-only view of r within parent
// Overlapping a live exclusive claim that parent does not descend from yields
// an inert zero-area view; shared claims never block reads
func OfReadOnly(parent ReadOnly, r Rect) ReadView {
	v := ofReadOnly(parent, r)
	if v.table != nil && v.table.conflict(v.rect, v.claimID, true) != nil {
		return ReadView{}
	}
	return v
}

func ofReadOnly(parent ReadOnly, r Rect) ReadView {
	switch p := parent.(type) {
	case nil:
		return ReadView{}
	case ReadView:
		return p.sub(r)
	case View:
		v := p.sub(r)
		return ReadView{parent: v.parent, rect: v.rect, table: v.table, claimID: v.claimID}
	case *Grid:
		if p == nil {
			return ReadView{}
		}
		return ReadView{parent: p, rect: r.Intersect(Bounds(p)), table: &p.claims}
	}
	return ReadView{parent: parent, rect: r.Intersect(Bounds(parent))}
}

func (v ReadView) sub(r Rect) ReadView {
	local := r.Intersect(Sized(v.rect.W, v.rect.H))
	return ReadView{
		parent:  v.parent,
		rect:    local.Translate(v.rect.X, v.rect.Y),
		table:   v.table,
		claimID: v.claimID,
	}
}

// Width returns view width
func (v ReadView) Width() int {
	return v.rect.W
}

// Height returns view height
func (v ReadView) Height() int {
	return v.rect.H
}

// Rect returns the view rectangle in root coordinates
func (v ReadView) Rect() Rect {
	return v.rect
}

// At returns the cell at local (x, y)
func (v ReadView) At(x, y int) (terminal.Cell, bool) {
	if x < 0 || x >= v.rect.W || y < 0 || y >= v.rect.H {
		return terminal.Cell{}, false
	}
	return v.parent.At(v.rect.X+x, v.rect.Y+y)
}

// Release returns the view's shared claim
func (v ReadView) Release() {
	if v.owns && v.table != nil {
		v.table.release(v.claimID)
	}
}
