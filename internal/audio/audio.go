// Package audio plays the game's sound effects.
package audio

// Sound identifies a sound effect.
type Sound int

const (
	Explosion Sound = iota
	PlayerShoot
	EnemyShoot
	Rocket // looping thrust hum, stopped explicitly
)

func (s Sound) String() string {
	switch s {
	case Explosion:
		return "explosion"
	case PlayerShoot:
		return "player_shoot"
	case EnemyShoot:
		return "enemy_shoot"
	case Rocket:
		return "rocket"
	default:
		return "unknown"
	}
}

// Player is the fire-and-forget audio backend used from event handlers.
type Player interface {
	Play(s Sound)
	Stop(s Sound)
}

// Silent discards every request. Used when audio is disabled, unavailable,
// or the game runs on a remote terminal.
type Silent struct{}

func (Silent) Play(Sound) {}
func (Silent) Stop(Sound) {}
