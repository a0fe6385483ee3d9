package physics

import (
	"testing"

	"github.com/tomz197/spaceship/internal/entity"
)

type box struct {
	entity.Base
}

func (*box) Kind() entity.Kind { return entity.KindOther }

func newBox(x, y, w, h float64) *box {
	return &box{Base: entity.Base{Rect: entity.Rect{X: x, Y: y, W: w, H: h}}}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b entity.Rect
		want bool
	}{
		{"identical", entity.Rect{X: 0, Y: 0, W: 2, H: 2}, entity.Rect{X: 0, Y: 0, W: 2, H: 2}, true},
		{"partial", entity.Rect{X: 0, Y: 0, W: 4, H: 4}, entity.Rect{X: 3, Y: 3, W: 4, H: 4}, true},
		{"contained", entity.Rect{X: 0, Y: 0, W: 10, H: 10}, entity.Rect{X: 4, Y: 4, W: 1, H: 1}, true},
		{"touching edge", entity.Rect{X: 0, Y: 0, W: 2, H: 2}, entity.Rect{X: 2, Y: 0, W: 2, H: 2}, false},
		{"apart vertically", entity.Rect{X: 0, Y: 0, W: 2, H: 2}, entity.Rect{X: 0, Y: 5, W: 2, H: 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	outer := entity.Rect{X: 0, Y: 0, W: 10, H: 10}
	if !Contains(outer, entity.Rect{X: 1, Y: 1, W: 2, H: 2}) {
		t.Error("inner rect not contained")
	}
	if Contains(outer, entity.Rect{X: 9, Y: 9, W: 2, H: 2}) {
		t.Error("overhanging rect reported as contained")
	}
}

func TestFirstOverlapSkipsDeadAndSelf(t *testing.T) {
	player := newBox(0, 0, 4, 4)
	dead := newBox(1, 1, 1, 1)
	dead.Kill()
	far := newBox(50, 50, 1, 1)
	hit := newBox(2, 2, 1, 1)
	second := newBox(3, 3, 1, 1)

	got, ok := FirstOverlap(player, []*box{player, dead, far, hit, second})
	if !ok || got != hit {
		t.Fatalf("FirstOverlap = %v, %v; want first live overlapping box", got, ok)
	}

	if _, ok := FirstOverlap(player, []*box{far}); ok {
		t.Fatal("FirstOverlap matched a distant box")
	}
}

func TestGroupCollideIsDestructive(t *testing.T) {
	e1 := newBox(0, 0, 4, 4)
	e2 := newBox(2, 0, 4, 4) // overlaps both bullets below
	b1 := newBox(3, 1, 1, 1)
	b2 := newBox(5, 1, 1, 1)

	var pairs [][2]*box
	n := GroupCollide([]*box{e1, e2}, []*box{b1, b2}, func(a, b *box) {
		pairs = append(pairs, [2]*box{a, b})
	})

	if n != 2 {
		t.Fatalf("GroupCollide = %d pairs, want 2", n)
	}
	if pairs[0] != [2]*box{e1, b1} || pairs[1] != [2]*box{e2, b2} {
		t.Fatalf("unexpected pairing: %v", pairs)
	}
	for i, b := range []*box{e1, e2, b1, b2} {
		if b.Alive() {
			t.Errorf("box %d still alive after collision", i)
		}
	}
}

func TestGroupCollideOneBulletOneEnemy(t *testing.T) {
	e1 := newBox(0, 0, 4, 4)
	e2 := newBox(1, 0, 4, 4)
	b := newBox(2, 1, 1, 1)

	n := GroupCollide([]*box{e1, e2}, []*box{b}, nil)
	if n != 1 {
		t.Fatalf("pairs = %d, want 1", n)
	}
	if !e2.Alive() {
		t.Error("second enemy consumed by an already-used bullet")
	}
}
