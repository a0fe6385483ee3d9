package loop

import (
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/physics"
)

// detectCollisions runs once per frame, before the drain, so it sees the
// positions left by the previous frame.
func (g *Game) detectCollisions() {
	if p := g.world.player; p != nil && p.Alive() {
		_, hit := physics.FirstOverlap(p, g.world.bullets)
		if !hit {
			_, hit = physics.FirstOverlap(p, g.world.enemies)
		}
		if hit {
			g.playerHit(p)
		}
	}

	physics.GroupCollide(g.world.enemies, g.world.bullets, func(enemy, _ entity.Entity) {
		g.Post(event.CreateElement{Element: object.NewExplosion(enemy.Bounds())})
		g.addScore(config.KillReward)
	})
}

func (g *Game) playerHit(p *object.Player) {
	g.Post(event.CreateElement{Element: object.NewExplosion(p.Bounds())})
	p.Kill()
	g.state.Lives--
	g.syncPanels()

	if g.state.Lives <= 0 {
		g.state.Lives = 0
		g.state.Over = true
		g.world.gameOver = object.NewText("GAME OVER")
		g.register(g.world.gameOver)
		g.log.Info("game over", "score", g.state.Score)
		return
	}
	event.Schedule(g, config.RestartDelay, event.RestartPlayer{}, entity.Handle{})
	g.log.Info("player destroyed", "lives", g.state.Lives)
}

func (g *Game) addScore(n int) {
	g.state.Score += n
	g.syncPanels()
}
