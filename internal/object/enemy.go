package object

import (
	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
)

// Enemy drifts along the top of the view and shoots downwards. Its behavior
// is driven entirely by its own delayed events: every ChangeDirection and
// Shoot it receives re-arms the matching timer.
type Enemy struct {
	Ship
	Tier   config.Tier
	sprite *draw.Sprite
}

// NewEnemy creates an enemy of tier at the top center of the view.
// tierIndex only picks the look.
func NewEnemy(tier config.Tier, tierIndex int) *Enemy {
	e := &Enemy{
		Tier:   tier,
		sprite: enemySprites[tierIndex%len(enemySprites)],
	}
	e.Rect = entity.Rect{
		X: config.ViewWidth/2 - config.ShipWidth/2,
		Y: 0,
		W: config.ShipWidth,
		H: config.ShipHeight,
	}
	return e
}

func (e *Enemy) Kind() entity.Kind { return entity.KindEnemy }

// Start arms the movement and shoot timers.
func (e *Enemy) Start() {
	e.armMove()
	e.armShoot()
}

func (e *Enemy) armMove() {
	e.schedule(e.randBetween(e.Tier.MoveFreq), event.ChangeDirection{})
}

func (e *Enemy) armShoot() {
	e.schedule(e.randBetween(e.Tier.ShootFreq), event.Shoot{})
}

func (e *Enemy) HandleEvent(ev event.Event) {
	switch ev.(type) {
	case event.ChangeDirection:
		dir := 0
		if e.env.Rand != nil {
			dir = e.env.Rand.IntN(3) - 1
		}
		e.MoveX = float64(dir) * config.EnemyMoveStep
		e.armMove()
	case event.Shoot:
		e.spawn(NewBullet(e.Rect.CenterX(), e.Rect.Bottom()+config.BulletHeight, 1, e.Tier.BulletSpeed))
		e.play(audio.EnemyShoot)
		e.armShoot()
	}
}

func (e *Enemy) Draw(c *draw.Canvas) {
	c.DrawSprite(e.Rect, e.sprite)
}
