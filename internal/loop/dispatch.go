package loop

import (
	"fmt"

	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
	"github.com/tomz197/spaceship/internal/object"
)

// dispatch routes one event:
//  1. quit and escape stop the loop
//  2. restart and fullscreen keys act on the game directly
//  3. every live handler sees the event
//  4. dispatcher events mutate state
//  5. clock ticks advance the scheduler
//  6. delayed triggers reach their target, or the dispatcher when it is gone
func (g *Game) dispatch(ev event.Event) error {
	g.stats.Events++

	switch ev := ev.(type) {
	case event.Quit:
		g.stop("quit")
		return nil
	case event.KeyDown:
		if ev.Key == event.KeyEscape {
			g.stop("escape")
			return nil
		}
	case event.KeyUp:
		switch ev.Key {
		case event.KeyRestart:
			g.restart()
		case event.KeyFullscreen:
			if g.display != nil {
				g.display.ToggleFullscreen()
			}
		}
	}

	for _, h := range g.world.handlers {
		if h.Alive() {
			h.HandleEvent(ev)
		}
	}

	switch ev := ev.(type) {
	case event.ClockTick:
		for _, x := range g.sched.Tick(config.DelayConstant) {
			g.queue.Post(event.DelayedTrigger{Payload: x.Payload, Target: x.Target})
		}
		return nil
	case event.DelayedTrigger:
		return g.deliver(ev)
	default:
		return g.handle(ev)
	}
}

// deliver hands a fired delayed event to its target. A target that died
// meanwhile is never called; the payload goes to the dispatcher instead.
func (g *Game) deliver(ev event.DelayedTrigger) error {
	if e, ok := g.world.table.Lookup(ev.Target); ok {
		if h, ok := e.(event.Handler); ok {
			h.HandleEvent(ev.Payload)
			return nil
		}
	}
	if !ev.Target.IsZero() {
		g.stats.Fallbacks++
		g.log.Debug("delayed event target gone", "event", ev.Payload, "target", ev.Target)
	}
	return g.handle(ev.Payload)
}

// handle is the dispatcher's own handler.
func (g *Game) handle(ev event.Event) error {
	switch ev := ev.(type) {
	case event.CreateElement:
		if ev.Element == nil {
			return fmt.Errorf("%w: CreateElement without element", ErrInvariant)
		}
		g.register(ev.Element)
	case event.CreateDelayed:
		if ev.Payload == nil {
			return fmt.Errorf("%w: CreateDelayed without payload", ErrInvariant)
		}
		g.sched.Schedule(ev.Delay, ev.Payload, ev.Target)
	case event.CreateEnemy:
		g.spawnEnemy()
	case event.RestartPlayer:
		g.restartPlayer()
	case event.ChangeDirection, event.Shoot, event.Animate, event.ClockTick,
		event.DelayedTrigger, event.KeyDown, event.KeyUp, event.Quit:
		// Only entities react to these.
	default:
		return fmt.Errorf("%w: unknown event %T", ErrInvariant, ev)
	}
	return nil
}

// register adds e to the collections, hands it its environment and starts it.
func (g *Game) register(e entity.Entity) {
	g.world.add(e)
	if a, ok := e.(object.Attachable); ok {
		a.Attach(g.env)
	}
	if s, ok := e.(object.Starter); ok {
		s.Start()
	}
}

// restartPlayer puts a new ship in play unless one is already alive.
func (g *Game) restartPlayer() {
	if g.world.playerAlive() {
		return
	}
	p := object.NewPlayer()
	g.world.player = p
	g.register(p)
}

// restart resets score and lives and clears the field of enemies and bullets.
func (g *Game) restart() {
	g.state.Score = 0
	g.state.Lives = g.state.MaxLives
	g.state.Over = false
	g.syncPanels()

	for _, e := range g.world.enemies {
		e.Kill()
	}
	for _, b := range g.world.bullets {
		b.Kill()
	}
	if g.world.gameOver != nil {
		g.world.gameOver.Kill()
	}
	if !g.world.playerAlive() {
		g.Post(event.RestartPlayer{})
	}
	g.log.Info("game restarted")
}

func (g *Game) syncPanels() {
	g.world.scoreboard.Score = g.state.Score
	g.world.lifePanel.Lives = g.state.Lives
}
