// Package physics provides overlap tests between entity bounding boxes.
package physics

import "github.com/tomz197/spaceship/internal/entity"

// Overlaps reports whether two rects intersect. Touching edges do not count.
func Overlaps(a, b entity.Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Contains reports whether inner lies entirely inside outer.
func Contains(outer, inner entity.Rect) bool {
	return inner.X >= outer.X && inner.Right() <= outer.Right() &&
		inner.Y >= outer.Y && inner.Bottom() <= outer.Bottom()
}

// FirstOverlap returns the first live member of group that overlaps e.
// Members are checked in slice order.
func FirstOverlap[T entity.Entity](e entity.Entity, group []T) (hit T, ok bool) {
	box := e.Bounds()
	for _, other := range group {
		if !other.Alive() || entity.Entity(other) == e {
			continue
		}
		if Overlaps(box, other.Bounds()) {
			return other, true
		}
	}
	return hit, false
}

// GroupCollide pairs overlapping members of as and bs destructively: each
// matched pair is killed before the search continues, so no entity takes
// part in two collisions within one pass. fn is called once per pair, after
// both are killed.
func GroupCollide[A, B entity.Entity](as []A, bs []B, fn func(a A, b B)) int {
	pairs := 0
	for _, a := range as {
		if !a.Alive() {
			continue
		}
		box := a.Bounds()
		for _, b := range bs {
			if !b.Alive() {
				continue
			}
			if Overlaps(box, b.Bounds()) {
				a.Kill()
				b.Kill()
				pairs++
				if fn != nil {
					fn(a, b)
				}
				break
			}
		}
	}
	return pairs
}
