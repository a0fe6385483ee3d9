// Package loop runs the game: it owns every entity collection and the score,
// drains the event queue once per frame and is the only code that mutates
// game state.
package loop

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"

	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
	"github.com/tomz197/spaceship/internal/logging"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/schedule"
)

// ErrInvariant is returned when the loop detects corrupted state.
var ErrInvariant = errors.New("game loop invariant violated")

const (
	// maxEventsPerFrame bounds one drain. Handlers that keep posting events
	// in reaction to each other would otherwise spin forever.
	maxEventsPerFrame = 10_000
	// maxTicksPerFrame bounds clock catch-up after a stall.
	maxTicksPerFrame = 10
)

// Renderer draws one frame.
type Renderer interface {
	Present(scene []draw.Drawable) error
}

// InputSource yields the raw events that arrived since the last poll. It must not block.
type InputSource interface {
	Poll() []event.Event
}

// Display is implemented by renderers that support a fullscreen toggle.
type Display interface {
	ToggleFullscreen()
}

// Deps are the backends a game runs against.
type Deps struct {
	Renderer Renderer
	Input    InputSource
	Display  Display      // optional
	Sound    audio.Player // optional, silent when nil
	Logger   *log.Logger  // optional, discards when nil
}

// Game is the event dispatcher and the single owner of game state.
type Game struct {
	id      ulid.ULID
	cfg     config.Config
	state   GameState
	stats   Stats
	world   *world
	queue   *event.Queue
	sched   *schedule.Scheduler
	rng     *rand.Rand
	env     object.Env
	render  Renderer
	input   InputSource
	display Display
	sound   audio.Player
	log     *log.Logger

	running  bool
	nextTick time.Time
	scene    []draw.Drawable
}

// New validates cfg and sets up a game with its initial entities. The first
// enemy is scheduled, not spawned.
func New(cfg config.Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "new game")
	}
	if deps.Renderer == nil || deps.Input == nil {
		return nil, fmt.Errorf("new game: renderer and input are required")
	}
	if deps.Sound == nil {
		deps.Sound = audio.Silent{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	id := ulid.Make()

	g := &Game{
		id:      id,
		cfg:     cfg,
		state:   GameState{Lives: cfg.MaxLives, MaxLives: cfg.MaxLives},
		world:   newWorld(),
		queue:   event.NewQueue(),
		sched:   schedule.New(),
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		render:  deps.Renderer,
		input:   deps.Input,
		display: deps.Display,
		sound:   deps.Sound,
		log:     deps.Logger.With("game", id.String()),
		running: true,
	}
	g.env = object.Env{Post: g, Sound: g.sound, Rand: g.rng}

	for i := 0; i < config.StarCount; i++ {
		g.register(object.NewStar(g.rng.Float64()*config.ViewWidth, g.rng.Float64()*config.ViewHeight))
	}
	g.world.lifePanel = object.NewLifePanel(cfg.MaxLives)
	g.register(g.world.lifePanel)
	g.world.scoreboard = object.NewScoreboard()
	g.register(g.world.scoreboard)
	g.restartPlayer()
	event.Schedule(g, config.FirstEnemyDelay, event.CreateEnemy{}, entity.Handle{})

	g.log.Info("game created", "seed", seed, "lives", cfg.MaxLives, "tiers", len(cfg.Tiers))
	return g, nil
}

// ID identifies the game in logs.
func (g *Game) ID() string { return g.id.String() }

// State returns a copy of the score and life pool.
func (g *Game) State() GameState { return g.state }

// Stats returns a copy of the dispatcher counters.
func (g *Game) Stats() Stats { return g.stats }

// Running reports whether the loop has not been stopped.
func (g *Game) Running() bool { return g.running }

// Post appends ev to the event queue. Entities reach it through object.Env.
func (g *Game) Post(ev event.Event) {
	g.queue.Post(ev)
}

// Run plays frames at config.TargetFPS until the game is stopped or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	g.log.Info("game started")
	for g.running {
		frameStart := time.Now()
		if err := g.Frame(frameStart); err != nil {
			g.log.Error("game aborted", "err", err)
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed >= config.TargetFrameTime {
			elapsed = config.TargetFrameTime
		}
		select {
		case <-ctx.Done():
			g.stop("context done")
		case <-time.After(config.TargetFrameTime - elapsed):
		}
	}
	return nil
}

// Frame runs one outer cycle at wall time now: collisions, event drain,
// entity updates, purge and render.
func (g *Game) Frame(now time.Time) error {
	g.stats.Frames++
	g.detectCollisions()

	if err := g.drain(now); err != nil {
		return err
	}
	if !g.running {
		return nil
	}

	for _, e := range g.world.all {
		if e.Alive() {
			e.Update()
		}
	}
	g.world.purge()

	if err := g.render.Present(g.buildScene()); err != nil {
		return logging.WrapError(err, "render frame %d", g.stats.Frames)
	}
	return nil
}

// drain appends raw input and due clock ticks to the queue, then dispatches
// until the queue is empty. Events posted while draining run in the same frame.
func (g *Game) drain(now time.Time) error {
	for _, ev := range g.input.Poll() {
		g.queue.Post(ev)
	}

	if g.nextTick.IsZero() {
		g.nextTick = now.Add(config.DelayConstant)
	}
	for n := 0; !now.Before(g.nextTick); n++ {
		if n == maxTicksPerFrame {
			g.log.Warn("clock fell behind, dropping ticks", "behind", now.Sub(g.nextTick))
			g.nextTick = now.Add(config.DelayConstant)
			break
		}
		g.queue.Post(event.ClockTick{})
		g.nextTick = g.nextTick.Add(config.DelayConstant)
	}

	for n := 0; ; n++ {
		ev, ok := g.queue.Next()
		if !ok {
			return nil
		}
		if n == maxEventsPerFrame {
			return fmt.Errorf("%w: more than %d events in frame %d", ErrInvariant, maxEventsPerFrame, g.stats.Frames)
		}
		if err := g.dispatch(ev); err != nil {
			return err
		}
		if !g.running {
			g.queue.Clear()
			return nil
		}
	}
}

func (g *Game) buildScene() []draw.Drawable {
	g.scene = g.scene[:0]
	for _, e := range g.world.all {
		if d, ok := e.(draw.Drawable); ok && e.Alive() {
			g.scene = append(g.scene, d)
		}
	}
	return g.scene
}

func (g *Game) stop(reason string) {
	if !g.running {
		return
	}
	g.running = false
	g.log.Info("game stopped", "reason", reason, "score", g.state.Score, "frames", g.stats.Frames)
}
