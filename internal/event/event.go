// Package event defines the events exchanged between entities and the dispatcher.
//
// Entities never touch each other or the dispatcher's collections directly.
// They post intents (create an element, schedule a delayed action) and the
// dispatcher applies them in arrival order.
package event

import (
	"fmt"
	"time"

	"github.com/tomz197/spaceship/internal/entity"
)

// Event is one variant of the event tagged union.
type Event interface {
	fmt.Stringer
	isEvent()
}

// CreateElement asks the dispatcher to register a new entity.
type CreateElement struct {
	Element entity.Entity
}

// CreateDelayed asks the dispatcher to hand Payload to the scheduler.
// When it fires, Payload is delivered to Target if it is still alive,
// otherwise to the dispatcher itself.
type CreateDelayed struct {
	Delay   time.Duration
	Payload Event
	Target  entity.Handle
}

// ChangeDirection tells an enemy to pick a new horizontal direction.
type ChangeDirection struct{}

// Shoot tells an enemy to fire.
type Shoot struct{}

// CreateEnemy asks the dispatcher to spawn the next enemy.
type CreateEnemy struct{}

// Animate advances an explosion to its next frame.
type Animate struct{}

// RestartPlayer asks the dispatcher to put a fresh player ship in play.
type RestartPlayer struct{}

// ClockTick is produced by the timer source every config.DelayConstant.
type ClockTick struct{}

// DelayedTrigger carries an expired scheduler entry back into the queue.
type DelayedTrigger struct {
	Payload Event
	Target  entity.Handle
}

// KeyDown is a raw key press.
type KeyDown struct {
	Key Key
}

// KeyUp is a raw key release.
type KeyUp struct {
	Key Key
}

// Quit is the raw request to close the game (window close, SIGINT, EOF).
type Quit struct{}

func (CreateElement) isEvent()   {}
func (CreateDelayed) isEvent()   {}
func (ChangeDirection) isEvent() {}
func (Shoot) isEvent()           {}
func (CreateEnemy) isEvent()     {}
func (Animate) isEvent()         {}
func (RestartPlayer) isEvent()   {}
func (ClockTick) isEvent()       {}
func (DelayedTrigger) isEvent()  {}
func (KeyDown) isEvent()         {}
func (KeyUp) isEvent()           {}
func (Quit) isEvent()            {}

func (e CreateElement) String() string {
	if e.Element == nil {
		return "CreateElement(nil)"
	}
	return "CreateElement(" + e.Element.Kind().String() + ")"
}

func (e CreateDelayed) String() string {
	return fmt.Sprintf("CreateDelayed(%s, %v, %v)", e.Delay, e.Payload, e.Target)
}

func (ChangeDirection) String() string { return "ChangeDirection" }
func (Shoot) String() string           { return "Shoot" }
func (CreateEnemy) String() string     { return "CreateEnemy" }
func (Animate) String() string         { return "Animate" }
func (RestartPlayer) String() string   { return "RestartPlayer" }
func (ClockTick) String() string       { return "ClockTick" }

func (e DelayedTrigger) String() string {
	return fmt.Sprintf("DelayedTrigger(%v, %v)", e.Payload, e.Target)
}

func (e KeyDown) String() string { return "KeyDown(" + e.Key.String() + ")" }
func (e KeyUp) String() string   { return "KeyUp(" + e.Key.String() + ")" }
func (Quit) String() string      { return "Quit" }

// Poster accepts events for later dispatch.
type Poster interface {
	Post(ev Event)
}

// Handler is the capability of an entity to react to dispatched events.
// Every handler sees every event and decides relevance itself.
type Handler interface {
	HandleEvent(ev Event)
}

// Schedule is shorthand for posting a CreateDelayed.
func Schedule(p Poster, delay time.Duration, payload Event, target entity.Handle) {
	p.Post(CreateDelayed{Delay: delay, Payload: payload, Target: target})
}
