package audio

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker synthesizes effects and mixes them onto the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rocket *beep.Ctrl
}

// NewSpeaker initializes the audio device. Only one Speaker may exist per process.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts s. Playing Rocket again resumes the same loop.
func (sp *Speaker) Play(s Sound) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if s == Rocket {
		speaker.Lock()
		defer speaker.Unlock()
		// The rocket loop stays in the mixer once added and is only paused.
		if sp.rocket == nil {
			sp.rocket = &beep.Ctrl{Streamer: newStreamer(Rocket)}
			sp.mixer.Add(sp.rocket)
		}
		sp.rocket.Paused = false
		return
	}

	speaker.Lock()
	sp.mixer.Add(newStreamer(s))
	speaker.Unlock()
}

// Stop silences a looping sound. One-shot effects run to completion.
func (sp *Speaker) Stop(s Sound) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if s == Rocket && sp.rocket != nil {
		speaker.Lock()
		sp.rocket.Paused = true
		speaker.Unlock()
	}
}

// Close stops every sound and releases the device.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	speaker.Clear()
	speaker.Close()
}

// newStreamer builds the synthesized waveform for s.
func newStreamer(s Sound) beep.Streamer {
	switch s {
	case Explosion:
		return newTone(90, 400*time.Millisecond, waveNoise, true)
	case PlayerShoot:
		return newTone(880, 60*time.Millisecond, waveSquare, true)
	case EnemyShoot:
		return &effects.Volume{
			Streamer: newTone(440, 60*time.Millisecond, waveSquare, true),
			Base:     2,
			Volume:   -1, // half volume
		}
	case Rocket:
		return newTone(70, 0, waveSaw, false)
	default:
		return beep.Silence(0)
	}
}

type wave int

const (
	waveSquare wave = iota
	waveSaw
	waveNoise
)

// tone is a simple oscillator. A zero length streams forever.
type tone struct {
	freq   float64
	phase  float64
	length int
	pos    int
	wave   wave
	decay  bool
}

func newTone(freq float64, d time.Duration, w wave, decay bool) *tone {
	return &tone{
		freq:   freq,
		length: sampleRate.N(d),
		wave:   w,
		decay:  decay,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.length > 0 && t.pos >= t.length {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case waveSaw:
			val = 2 * (t.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		amp := 0.2
		if t.decay && t.length > 0 {
			amp *= 1 - float64(t.pos)/float64(t.length)
		}
		samples[i][0] = val * amp
		samples[i][1] = val * amp

		t.phase += t.freq / float64(sampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
