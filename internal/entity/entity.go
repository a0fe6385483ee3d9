// Package entity defines the base simulation object shared by every game element.
package entity

// Rect is an axis-aligned bounding box in logical units.
// X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Kind tags the concrete type of an entity so the dispatcher can route it
// into the right collections without reflection.
type Kind int

const (
	KindOther Kind = iota
	KindPlayer
	KindEnemy
	KindBullet
	KindExplosion
	KindText
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindExplosion:
		return "explosion"
	case KindText:
		return "text"
	case KindStar:
		return "star"
	default:
		return "other"
	}
}

// Entity is a simulation object owned by the dispatcher.
type Entity interface {
	// Kind reports the concrete entity type.
	Kind() Kind
	// Bounds returns the current bounding box.
	Bounds() Rect
	// Alive reports whether the entity is still part of the simulation.
	Alive() bool
	// Kill marks the entity dead. Collections drop it lazily on the next purge.
	Kill()
	// Update advances the entity by one logical frame.
	Update()
	// Handle returns the handle assigned at registration (zero before).
	Handle() Handle
	// SetHandle is called once by the handle table on insertion.
	SetHandle(h Handle)
}

// Base carries the state common to all entities. Concrete types embed it.
type Base struct {
	Rect   Rect
	handle Handle
	dead   bool
}

// Bounds returns the bounding box.
func (b *Base) Bounds() Rect { return b.Rect }

// Alive reports whether the entity has not been killed.
func (b *Base) Alive() bool { return !b.dead }

// Kill marks the entity dead.
func (b *Base) Kill() { b.dead = true }

// Handle returns the entity's handle.
func (b *Base) Handle() Handle { return b.handle }

// SetHandle stores the handle assigned by the table.
func (b *Base) SetHandle(h Handle) { b.handle = h }

// Update is a no-op for static entities.
func (b *Base) Update() {}

// Purge removes dead entities from s in place, preserving order.
// The backing array is reused.
func Purge[T Entity](s []T) []T {
	kept := s[:0]
	for _, e := range s {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	var zero T
	for i := len(kept); i < len(s); i++ {
		s[i] = zero
	}
	return kept
}
