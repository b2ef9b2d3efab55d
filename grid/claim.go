package grid

// MaxClaims is the number of claims a grid tracks concurrently
const MaxClaims = 32

type claimSlot struct {
	rect   Rect
	id     uint32 // 0 marks a free slot
	parent uint32
	shared bool
}

// claimTable is a fixed-capacity registry of live views on a grid
// Single-threaded by contract; callers serialize access
type claimTable struct {
	slots [MaxClaims]claimSlot
	next  uint32
}

func (t *claimTable) reset() {
	for i := range t.slots {
		t.slots[i] = claimSlot{}
	}
}

func (t *claimTable) find(id uint32) *claimSlot {
	if id == 0 {
		return nil
	}
	for i := range t.slots {
		if t.slots[i].id == id {
			return &t.slots[i]
		}
	}
	return nil
}

func (t *claimTable) live(id uint32) bool {
	return t.find(id) != nil
}

// isAncestor walks the parent chain starting at id
func (t *claimTable) isAncestor(candidate, id uint32) bool {
	for id != 0 {
		if id == candidate {
			return true
		}
		s := t.find(id)
		if s == nil {
			return false
		}
		id = s.parent
	}
	return false
}

// conflict returns the live claim that r may not alias from under parent, or nil
// Claims in the parent chain are exempt; shared requests only conflict with exclusive claims
func (t *claimTable) conflict(r Rect, parent uint32, shared bool) *claimSlot {
	if r.Empty() {
		return nil
	}
	for i := range t.slots {
		s := &t.slots[i]
		if s.id == 0 || !s.rect.Overlaps(r) {
			continue
		}
		if shared && s.shared {
			continue
		}
		if t.isAncestor(s.id, parent) {
			continue
		}
		return s
	}
	return nil
}

// acquire registers r under parent, failing on overlap with any live claim
// outside the parent chain; shared claims only conflict with exclusive ones
func (t *claimTable) acquire(r Rect, parent uint32, shared bool) (uint32, error) {
	if s := t.conflict(r, parent, shared); s != nil {
		return 0, &ConflictError{Requested: r, Held: s.rect, Shared: s.shared}
	}
	free := -1
	for i := range t.slots {
		if t.slots[i].id == 0 {
			free = i
			break
		}
	}
	if free < 0 {
		return 0, ErrClaimTableFull
	}

	t.next++
	if t.next == 0 {
		t.next = 1
	}
	t.slots[free] = claimSlot{rect: r, id: t.next, parent: parent, shared: shared}
	return t.next, nil
}

// release frees id and every claim derived from it
func (t *claimTable) release(id uint32) {
	s := t.find(id)
	if s == nil {
		return
	}
	*s = claimSlot{}
	for i := range t.slots {
		if t.slots[i].id != 0 && t.slots[i].parent == id {
			t.release(t.slots[i].id)
		}
	}
}

func (t *claimTable) count() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].id != 0 {
			n++
		}
	}
	return n
}

// LiveClaims returns the number of views currently holding claims on the grid
func (g *Grid) LiveClaims() int {
	return g.claims.count()
}

// Claim returns an exclusive view of r within parent
// Fails with a *ConflictError (errors.Is ErrViewConflict) if r overlaps a live
// claim that is not one of parent's own ancestors
func Claim(parent Drawable, r Rect) (View, error) {
	v := of(parent, r)
	if v.table == nil {
		return View{}, ErrNotClaimable
	}
	id, err := v.table.acquire(v.rect, v.claimID, false)
	if err != nil {
		return View{}, err
	}
	v.claimID = id
	v.owns = true
	return v, nil
}

// ClaimShared returns a read-only view of r that conflicts only with exclusive claims
func ClaimShared(parent ReadOnly, r Rect) (ReadView, error) {
	v := ofReadOnly(parent, r)
	if v.table == nil {
		return ReadView{}, ErrNotClaimable
	}
	id, err := v.table.acquire(v.rect, v.claimID, true)
	if err != nil {
		return ReadView{}, err
	}
	v.claimID = id
	v.owns = true
	return v, nil
}
