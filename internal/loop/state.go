package loop

import (
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
	"github.com/tomz197/spaceship/internal/object"
)

// GameState is the score and life pool of one game.
type GameState struct {
	Score    int
	Lives    int
	MaxLives int
	Over     bool // lives ran out; only a restart leaves this state
}

// Stats counts what the dispatcher has done so far.
type Stats struct {
	Frames    int
	Events    int
	Fallbacks int // delayed events whose target was gone
}

type handlerEntity interface {
	entity.Entity
	event.Handler
}

// world holds the entity collections. Only the dispatcher mutates them.
type world struct {
	table    *entity.Table
	all      []entity.Entity
	enemies  []entity.Entity
	bullets  []entity.Entity
	handlers []handlerEntity

	player     *object.Player
	scoreboard *object.Scoreboard
	lifePanel  *object.LifePanel
	gameOver   *object.Text
}

func newWorld() *world {
	return &world{table: entity.NewTable()}
}

// add puts e into every collection it belongs to.
func (w *world) add(e entity.Entity) {
	w.table.Insert(e)
	w.all = append(w.all, e)

	switch e.Kind() {
	case entity.KindEnemy:
		w.enemies = append(w.enemies, e)
	case entity.KindBullet:
		w.bullets = append(w.bullets, e)
	}
	if h, ok := e.(handlerEntity); ok {
		w.handlers = append(w.handlers, h)
	}
}

// purge drops dead entities from every collection and frees their handles.
func (w *world) purge() {
	for _, e := range w.all {
		if !e.Alive() {
			w.table.Remove(e.Handle())
		}
	}
	w.all = entity.Purge(w.all)
	w.enemies = entity.Purge(w.enemies)
	w.bullets = entity.Purge(w.bullets)
	w.handlers = entity.Purge(w.handlers)

	if w.player != nil && !w.player.Alive() {
		w.player = nil
	}
	if w.gameOver != nil && !w.gameOver.Alive() {
		w.gameOver = nil
	}
}

func (w *world) playerAlive() bool {
	return w.player != nil && w.player.Alive()
}
