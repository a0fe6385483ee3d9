package object

import (
	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
)

// Player is the ship steered from the keyboard.
type Player struct {
	Ship
	thrust bool
}

// NewPlayer places a player ship at the bottom center of the view.
func NewPlayer() *Player {
	p := &Player{}
	p.Rect = entity.Rect{
		X: config.ViewWidth/2 - config.ShipWidth/2,
		Y: config.ViewHeight - config.ShipHeight,
		W: config.ShipWidth,
		H: config.ShipHeight,
	}
	return p
}

func (p *Player) Kind() entity.Kind { return entity.KindPlayer }

// Thrusting reports whether the rocket is firing.
func (p *Player) Thrusting() bool { return p.thrust }

// HandleEvent moves on key down and stops on key up. Shots fire on release.
func (p *Player) HandleEvent(ev event.Event) {
	switch ev := ev.(type) {
	case event.KeyDown:
		switch ev.Key {
		case event.KeyRight:
			p.MoveX = config.PlayerMoveStep
		case event.KeyLeft:
			p.MoveX = -config.PlayerMoveStep
		case event.KeyForward:
			p.MoveY = -config.PlayerMoveYStep
			if !p.thrust {
				p.thrust = true
				p.play(audio.Rocket)
			}
		case event.KeyBack:
			p.MoveY = config.PlayerMoveBackStep
		}
	case event.KeyUp:
		switch ev.Key {
		case event.KeyLeft, event.KeyRight:
			p.MoveX = 0
		case event.KeySpace:
			p.spawn(NewBullet(p.Rect.CenterX(), p.Rect.Y, -1, config.PlayerBulletSpeed))
			p.play(audio.PlayerShoot)
		case event.KeyForward, event.KeyBack:
			p.MoveY = 0
			p.stopThrust()
		}
	}
}

// Kill removes the ship and silences its rocket.
func (p *Player) Kill() {
	p.stopThrust()
	p.Ship.Kill()
}

func (p *Player) stopThrust() {
	if p.thrust {
		p.thrust = false
		p.stop(audio.Rocket)
	}
}

func (p *Player) Draw(c *draw.Canvas) {
	if p.thrust {
		c.DrawSprite(p.Rect, playerRocketSprite)
		return
	}
	c.DrawSprite(p.Rect, playerSprite)
}
