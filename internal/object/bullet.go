package object

import (
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
)

// Bullet travels vertically until it leaves the view or hits something.
type Bullet struct {
	entity.Base
	Dir   float64 // -1 up, 1 down
	Speed float64
}

// NewBullet creates a bullet whose bottom edge is centered on (x, y).
func NewBullet(x, y, dir, speed float64) *Bullet {
	b := &Bullet{Dir: dir, Speed: speed}
	b.Rect = entity.Rect{
		X: x - config.BulletWidth/2,
		Y: y - config.BulletHeight,
		W: config.BulletWidth,
		H: config.BulletHeight,
	}
	return b
}

func (b *Bullet) Kind() entity.Kind { return entity.KindBullet }

func (b *Bullet) Update() {
	b.Rect.Y += b.Dir * b.Speed
	if b.Rect.Y < 0 || b.Rect.Y > config.ViewHeight {
		b.Kill()
	}
}

func (b *Bullet) Draw(c *draw.Canvas) {
	c.FillRect(b.Rect)
}
