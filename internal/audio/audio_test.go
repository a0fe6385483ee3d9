package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestSoundString(t *testing.T) {
	tests := []struct {
		s    Sound
		want string
	}{
		{Explosion, "explosion"},
		{PlayerShoot, "player_shoot"},
		{EnemyShoot, "enemy_shoot"},
		{Rocket, "rocket"},
		{Sound(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Sound(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}

func TestSilentSatisfiesPlayer(t *testing.T) {
	var p Player = Silent{}
	p.Play(Explosion)
	p.Stop(Rocket)
}

func TestToneLength(t *testing.T) {
	tn := newTone(440, 10*time.Millisecond, waveSquare, true)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := tn.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatal("finite tone never drained")
		}
	}
	if total != want {
		t.Fatalf("streamed %d samples, want %d", total, want)
	}
}

func TestToneDecaysToSilence(t *testing.T) {
	tn := newTone(100, 5*time.Millisecond, waveSquare, true)
	buf := make([][2]float64, sampleRate.N(5*time.Millisecond))
	tn.Stream(buf)

	first, last := buf[0][0], buf[len(buf)-1][0]
	if abs(last) >= abs(first) {
		t.Errorf("amplitude did not decay: first=%v last=%v", first, last)
	}
}

func TestEndlessToneKeepsStreaming(t *testing.T) {
	tn := newTone(70, 0, waveSaw, false)
	buf := make([][2]float64, 1024)
	for i := 0; i < 100; i++ {
		if n, ok := tn.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("iteration %d: Stream = %d, %v", i, n, ok)
		}
	}
}

func TestNewStreamerCoversEverySound(t *testing.T) {
	for _, s := range []Sound{Explosion, PlayerShoot, EnemyShoot, Rocket} {
		if newStreamer(s) == nil {
			t.Errorf("newStreamer(%v) = nil", s)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestRocketLoopIsReused(t *testing.T) {
	sp := &Speaker{mixer: &beep.Mixer{}}
	for i := 0; i < 50; i++ {
		sp.Play(Rocket)
		if sp.rocket.Paused {
			t.Fatalf("cycle %d: rocket paused after Play", i)
		}
		sp.Stop(Rocket)
		if !sp.rocket.Paused {
			t.Fatalf("cycle %d: rocket playing after Stop", i)
		}
	}
	if n := sp.mixer.Len(); n != 1 {
		t.Fatalf("mixer holds %d streamers, want 1", n)
	}
}
