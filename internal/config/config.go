package config

import (
	"errors"
	"fmt"
	"time"
)

// View resolution - game objects use these logical dimensions.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 120 // Logical width
	ViewHeight = 80  // Logical height (in sub-pixels, so 40 terminal rows)
)

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered view unless fullscreen is toggled on.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)

// Timing
const (
	DelayConstant   = 100 * time.Millisecond // Scheduler tick granularity
	TargetFPS       = 30
	TargetFrameTime = time.Second / TargetFPS
)

// Scoring and difficulty
const (
	KillReward   = 100
	ScorePerTier = 150
)

// Player
const (
	InitialLives   = 3
	RestartDelay   = 700 * time.Millisecond
	StarCount      = 100
	KeyHoldTimeout = 120 * time.Millisecond // Terminal keys have no release event
)

// Ships and bullets, in logical units. Steps are per frame.
const (
	ShipWidth          = 8.0
	ShipHeight         = 6.0
	PlayerMoveStep     = 1.5
	PlayerMoveYStep    = 0.75 // forward
	PlayerMoveBackStep = PlayerMoveStep
	EnemyMoveStep      = 1.0
	BulletWidth        = 0.6
	BulletHeight       = 2.0
	PlayerBulletSpeed  = 2.5
	StarSize           = 0.5
	StarStep           = 0.4
)

// Explosions
const (
	ExplosionFrameDelay = 200 * time.Millisecond
	ExplosionFrames     = 3
)

// Enemy spawning
const (
	FirstEnemyDelay      = 0
	BaseSpawnIntervalSec = 10
	MinSpawnIntervalSec  = 10
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Range is an inclusive [Min, Max] interval of milliseconds.
type Range struct {
	Min int
	Max int
}

// Tier is one enemy difficulty preset.
type Tier struct {
	Name        string
	MoveFreq    Range   // ms between direction changes
	ShootFreq   Range   // ms between shots
	BulletSpeed float64 // logical units per frame
}

// DefaultTiers returns the eight presets, easiest first.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "1", MoveFreq: Range{100, 1000}, ShootFreq: Range{200, 1000}, BulletSpeed: 1.5},
		{Name: "2", MoveFreq: Range{100, 700}, ShootFreq: Range{200, 700}, BulletSpeed: 1.5},
		{Name: "3", MoveFreq: Range{100, 1000}, ShootFreq: Range{200, 1000}, BulletSpeed: 1.8},
		{Name: "4", MoveFreq: Range{100, 700}, ShootFreq: Range{200, 600}, BulletSpeed: 1.8},
		{Name: "5", MoveFreq: Range{100, 500}, ShootFreq: Range{300, 500}, BulletSpeed: 1.5},
		{Name: "6", MoveFreq: Range{100, 200}, ShootFreq: Range{200, 400}, BulletSpeed: 1.8},
		{Name: "7", MoveFreq: Range{100, 500}, ShootFreq: Range{200, 500}, BulletSpeed: 2.1},
		{Name: "8", MoveFreq: Range{100, 400}, ShootFreq: Range{200, 400}, BulletSpeed: 2.1},
	}
}

// Backend selects the terminal implementation.
type Backend string

const (
	BackendANSI  Backend = "ansi"
	BackendTcell Backend = "tcell"
)

// Config is the runtime configuration of one game.
type Config struct {
	MaxLives int
	Seed     uint64 // 0 picks a time-based seed
	Sound    bool
	Backend  Backend
	KeyHold  time.Duration
	LogFile  string
	LogLevel string
	Tiers    []Tier
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		MaxLives: InitialLives,
		Sound:    true,
		Backend:  BackendANSI,
		KeyHold:  KeyHoldTimeout,
		LogLevel: "info",
		Tiers:    DefaultTiers(),
	}
}

// Load reads overrides from the environment on top of Default.
func Load() (Config, error) {
	cfg := Default()

	lives, err := GetEnvInt("SPACESHIP_LIVES", cfg.MaxLives)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	cfg.MaxLives = lives

	if cfg.Seed, err = GetEnvUint("SPACESHIP_SEED", cfg.Seed); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if cfg.Sound, err = GetEnvBool("SPACESHIP_SOUND", cfg.Sound); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.KeyHold, err = GetEnvDuration("SPACESHIP_KEY_HOLD", cfg.KeyHold); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	cfg.Backend = Backend(GetEnv("SPACESHIP_BACKEND", string(cfg.Backend)))
	cfg.LogFile = GetEnv("SPACESHIP_LOG_FILE", "")
	cfg.LogLevel = GetEnv("SPACESHIP_LOG_LEVEL", cfg.LogLevel)

	return cfg, cfg.Validate()
}

// Validate rejects configurations the game loop cannot run with.
func (c Config) Validate() error {
	if c.MaxLives <= 0 {
		return fmt.Errorf("%w: max lives must be positive, got %d", ErrInvalid, c.MaxLives)
	}
	if c.KeyHold <= 0 {
		return fmt.Errorf("%w: key hold must be positive, got %s", ErrInvalid, c.KeyHold)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("%w: no difficulty tiers", ErrInvalid)
	}
	for i, t := range c.Tiers {
		if err := t.validate(); err != nil {
			return fmt.Errorf("%w: tier %d (%s): %v", ErrInvalid, i, t.Name, err)
		}
	}
	return nil
}

func (t Tier) validate() error {
	if err := t.MoveFreq.validate(); err != nil {
		return fmt.Errorf("move frequency: %w", err)
	}
	if err := t.ShootFreq.validate(); err != nil {
		return fmt.Errorf("shoot frequency: %w", err)
	}
	if t.BulletSpeed <= 0 {
		return fmt.Errorf("bullet speed must be positive, got %v", t.BulletSpeed)
	}
	return nil
}

func (r Range) validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("bad range [%d, %d]", r.Min, r.Max)
	}
	return nil
}

// TierIndex selects the difficulty tier for score.
func TierIndex(score, tierCount int) int {
	idx := score / ScorePerTier
	if idx > tierCount-1 {
		idx = tierCount - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// SpawnInterval returns the delay before the next enemy. The lower clamp
// equals the base interval, so the result is always ten seconds: the
// "faster spawns at higher score" ramp never takes effect. Kept as is.
func SpawnInterval(score int) time.Duration {
	secs := BaseSpawnIntervalSec - score/ScorePerTier
	if secs < MinSpawnIntervalSec {
		secs = MinSpawnIntervalSec
	}
	return time.Duration(secs) * time.Second
}
