package object

import (
	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
)

// Explosion animates over the rect of whatever was destroyed, then removes itself.
type Explosion struct {
	Actor
	frame int // 1-based
}

// NewExplosion covers r.
func NewExplosion(r entity.Rect) *Explosion {
	x := &Explosion{frame: 1}
	x.Rect = r
	return x
}

func (x *Explosion) Kind() entity.Kind { return entity.KindExplosion }

// Frame returns the current animation frame, starting at 1.
func (x *Explosion) Frame() int { return x.frame }

// Start plays the sound and arms the first frame change.
func (x *Explosion) Start() {
	x.play(audio.Explosion)
	x.schedule(config.ExplosionFrameDelay, event.Animate{})
}

func (x *Explosion) HandleEvent(ev event.Event) {
	if _, ok := ev.(event.Animate); !ok {
		return
	}
	if x.frame >= config.ExplosionFrames {
		x.Kill()
		return
	}
	x.frame++
	x.schedule(config.ExplosionFrameDelay, event.Animate{})
}

func (x *Explosion) Draw(c *draw.Canvas) {
	c.DrawSprite(x.Rect, explosionSprites[(x.frame-1)%len(explosionSprites)])
}
