package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty tiers", func(c *Config) { c.Tiers = nil }},
		{"zero lives", func(c *Config) { c.MaxLives = 0 }},
		{"inverted range", func(c *Config) { c.Tiers[0].MoveFreq = Range{Min: 500, Max: 100} }},
		{"negative range", func(c *Config) { c.Tiers[2].ShootFreq = Range{Min: -1, Max: 100} }},
		{"zero bullet speed", func(c *Config) { c.Tiers[1].BulletSpeed = 0 }},
		{"unknown backend", func(c *Config) { c.Backend = "sdl" }},
		{"zero key hold", func(c *Config) { c.KeyHold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestTierIndex(t *testing.T) {
	tests := []struct {
		score, count, want int
	}{
		{0, 8, 0},
		{149, 8, 0},
		{150, 8, 1},
		{1049, 8, 6},
		{1050, 8, 7},
		{100000, 8, 7},
		{100000, 1, 0},
	}
	for _, tt := range tests {
		if got := TierIndex(tt.score, tt.count); got != tt.want {
			t.Errorf("TierIndex(%d, %d) = %d, want %d", tt.score, tt.count, got, tt.want)
		}
	}
}

// The lower clamp equals the base interval, so the interval never shrinks.
func TestSpawnIntervalClampQuirk(t *testing.T) {
	for _, score := range []int{0, 150, 1500, 100000} {
		if got := SpawnInterval(score); got != 10*time.Second {
			t.Errorf("SpawnInterval(%d) = %v, want 10s", score, got)
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPACESHIP_LIVES", "5")
	t.Setenv("SPACESHIP_SEED", "42")
	t.Setenv("SPACESHIP_SOUND", "false")
	t.Setenv("SPACESHIP_BACKEND", "tcell")
	t.Setenv("SPACESHIP_KEY_HOLD", "80ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxLives != 5 || cfg.Seed != 42 || cfg.Sound || cfg.Backend != BackendTcell || cfg.KeyHold != 80*time.Millisecond {
		t.Fatalf("Load() = %+v", cfg)
	}
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("SPACESHIP_LIVES", "three")

	_, err := Load()
	var envErr *EnvError
	if !errors.As(err, &envErr) {
		t.Fatalf("Load() error = %v, want *EnvError", err)
	}
	if envErr.Key != "SPACESHIP_LIVES" {
		t.Errorf("EnvError.Key = %q", envErr.Key)
	}
}

func TestLoadSeed(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uint64
		wantErr bool
	}{
		{"max uint64", "18446744073709551615", 18446744073709551615, false},
		{"above max int64", "9223372036854775808", 9223372036854775808, false},
		{"negative", "-1", 0, true},
		{"not a number", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SPACESHIP_SEED", tt.value)
			cfg, err := Load()
			if tt.wantErr {
				var envErr *EnvError
				if !errors.As(err, &envErr) || envErr.Key != "SPACESHIP_SEED" {
					t.Fatalf("Load() error = %v, want *EnvError for SPACESHIP_SEED", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Seed != tt.want {
				t.Errorf("Seed = %d, want %d", cfg.Seed, tt.want)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("SPACESHIP_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SPACESHIP_TEST_DOTENV") })

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := GetEnv("SPACESHIP_TEST_DOTENV", ""); got != "loaded" {
		t.Errorf("GetEnv = %q, want %q", got, "loaded")
	}
}
