package entity

import "testing"

type dummy struct {
	Base
}

func (d *dummy) Kind() Kind { return KindOther }

func TestTableInsertLookup(t *testing.T) {
	tbl := NewTable()
	a := &dummy{}
	h := tbl.Insert(a)

	if h.IsZero() {
		t.Fatal("Insert returned zero handle")
	}
	if a.Handle() != h {
		t.Fatalf("entity handle = %v, want %v", a.Handle(), h)
	}
	got, ok := tbl.Lookup(h)
	if !ok || got != a {
		t.Fatalf("Lookup(%v) = %v, %v; want entity, true", h, got, ok)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestTableDeadEntityDoesNotResolve(t *testing.T) {
	tbl := NewTable()
	a := &dummy{}
	h := tbl.Insert(a)
	a.Kill()

	if _, ok := tbl.Lookup(h); ok {
		t.Fatal("dead entity resolved through its handle")
	}
}

func TestTableStaleHandleAfterReuse(t *testing.T) {
	tbl := NewTable()
	a := &dummy{}
	ha := tbl.Insert(a)
	if !tbl.Remove(ha) {
		t.Fatal("Remove returned false for live handle")
	}

	b := &dummy{}
	hb := tbl.Insert(b)
	if hb.index != ha.index {
		t.Fatalf("slot not reused: a=%v b=%v", ha, hb)
	}
	if _, ok := tbl.Lookup(ha); ok {
		t.Fatal("stale handle resolved after slot reuse")
	}
	if got, ok := tbl.Lookup(hb); !ok || got != b {
		t.Fatalf("Lookup(new handle) = %v, %v", got, ok)
	}
	if tbl.Remove(ha) {
		t.Error("Remove accepted stale handle")
	}
}

func TestZeroHandle(t *testing.T) {
	var h Handle
	if !h.IsZero() {
		t.Fatal("zero Handle is not IsZero")
	}
	if _, ok := NewTable().Lookup(h); ok {
		t.Fatal("zero handle resolved")
	}
	if h.String() != "none" {
		t.Errorf("String() = %q, want %q", h.String(), "none")
	}
}

func TestPurgeKeepsOrder(t *testing.T) {
	a, b, c := &dummy{}, &dummy{}, &dummy{}
	b.Kill()
	s := []*dummy{a, b, c}

	s = Purge(s)
	if len(s) != 2 || s[0] != a || s[1] != c {
		t.Fatalf("Purge = %v, want [a c]", s)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 6}
	if r.Right() != 6 || r.Bottom() != 9 || r.CenterX() != 4 {
		t.Fatalf("Right/Bottom/CenterX = %v/%v/%v", r.Right(), r.Bottom(), r.CenterX())
	}
	moved := r.Translate(1, -1)
	if moved.X != 3 || moved.Y != 2 || r.X != 2 {
		t.Fatalf("Translate = %+v (orig %+v)", moved, r)
	}
}
