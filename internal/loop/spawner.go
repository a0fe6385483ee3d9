package loop

import (
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
	"github.com/tomz197/spaceship/internal/object"
)

// spawnEnemy adds an enemy for the current score and schedules the next one.
// Spawning only ever happens in response to a CreateEnemy event.
func (g *Game) spawnEnemy() {
	idx := config.TierIndex(g.state.Score, len(g.cfg.Tiers))
	g.register(object.NewEnemy(g.cfg.Tiers[idx], idx))

	next := config.SpawnInterval(g.state.Score)
	event.Schedule(g, next, event.CreateEnemy{}, entity.Handle{})
	g.log.Debug("enemy spawned", "tier", g.cfg.Tiers[idx].Name, "next", next, "enemies", len(g.world.enemies))
}
