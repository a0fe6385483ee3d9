// Package object contains the game's entities.
//
// Entities never reach into each other or into the dispatcher. They react to
// events delivered to HandleEvent and request changes by posting events
// through the Env handed to them at registration.
package object

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/spaceship/internal/audio"
	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
)

// Env provides the capabilities an entity may use once registered.
type Env struct {
	Post  event.Poster
	Sound audio.Player
	Rand  *rand.Rand
}

// Attachable is implemented by entities that need an Env.
type Attachable interface {
	Attach(env Env)
}

// Starter is implemented by entities that arm timers once registered.
// Start runs after the entity has a handle.
type Starter interface {
	Start()
}

// Actor is the base of every entity that posts events or plays sounds.
type Actor struct {
	entity.Base
	env Env
}

// Attach stores env. Called by the dispatcher before Start.
func (a *Actor) Attach(env Env) {
	a.env = env
}

// schedule asks for payload to be delivered back to this entity after delay.
func (a *Actor) schedule(delay time.Duration, payload event.Event) {
	if a.env.Post == nil {
		return
	}
	event.Schedule(a.env.Post, delay, payload, a.Handle())
}

// spawn asks the dispatcher to register e.
func (a *Actor) spawn(e entity.Entity) {
	if a.env.Post == nil {
		return
	}
	a.env.Post.Post(event.CreateElement{Element: e})
}

func (a *Actor) play(s audio.Sound) {
	if a.env.Sound != nil {
		a.env.Sound.Play(s)
	}
}

func (a *Actor) stop(s audio.Sound) {
	if a.env.Sound != nil {
		a.env.Sound.Stop(s)
	}
}

// randBetween draws a duration in r, in milliseconds, inclusive.
func (a *Actor) randBetween(r config.Range) time.Duration {
	ms := r.Min
	if a.env.Rand != nil && r.Max > r.Min {
		ms += a.env.Rand.IntN(r.Max - r.Min + 1)
	}
	return time.Duration(ms) * time.Millisecond
}

// Ship holds the movement shared by the player and enemies.
type Ship struct {
	Actor
	MoveX, MoveY float64
}

// Update moves the ship one step, refusing moves that would leave the view.
func (s *Ship) Update() {
	r := s.Rect
	if x := r.X + s.MoveX; 0 < x && x < config.ViewWidth-r.W {
		s.Rect.X = x
	}
	if y := r.Y + s.MoveY; 0 < y && y < config.ViewHeight-r.H {
		s.Rect.Y = y
	}
}
