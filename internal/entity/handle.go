package entity

import "fmt"

// Handle is a weak reference to an entity: a slot index plus the generation
// the slot had when the entity was inserted. The zero Handle refers to nothing.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h refers to nothing.
func (h Handle) IsZero() bool { return h.gen == 0 }

func (h Handle) String() string {
	if h.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%d#%d", h.index, h.gen)
}

type slot struct {
	gen uint32
	e   Entity
}

// Table maps handles to entities. Removing an entity bumps the slot
// generation so handles that still point at it stop resolving.
type Table struct {
	slots []slot
	free  []uint32
	live  int
}

// NewTable creates an empty handle table.
func NewTable() *Table {
	return &Table{}
}

// Insert stores e, assigns it a fresh handle and returns that handle.
func (t *Table) Insert(e Entity) Handle {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}

	s := &t.slots[idx]
	s.gen++
	if s.gen == 0 { // wrapped; zero is reserved for "no handle"
		s.gen = 1
	}
	s.e = e
	t.live++

	h := Handle{index: idx, gen: s.gen}
	e.SetHandle(h)
	return h
}

// Lookup resolves h. It fails when the slot was reused, freed, or the entity is dead.
func (t *Table) Lookup(h Handle) (Entity, bool) {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return nil, false
	}
	s := t.slots[h.index]
	if s.gen != h.gen || s.e == nil || !s.e.Alive() {
		return nil, false
	}
	return s.e, true
}

// Remove frees the slot referenced by h. Returns false if h was stale.
func (t *Table) Remove(h Handle) bool {
	if h.IsZero() || int(h.index) >= len(t.slots) {
		return false
	}
	s := &t.slots[h.index]
	if s.gen != h.gen || s.e == nil {
		return false
	}
	s.e = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	t.free = append(t.free, h.index)
	t.live--
	return true
}

// Len returns the number of entities currently stored.
func (t *Table) Len() int {
	return t.live
}
