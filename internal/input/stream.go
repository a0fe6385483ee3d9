package input

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/spaceship/internal/event"
)

// Stream reads raw terminal bytes in the background and turns them into events.
type Stream struct {
	ch   chan byte
	keys *Tracker
	now  func() time.Time
	eof  bool

	pending  []byte    // unfinished escape sequence
	escSince time.Time // when pending was first seen
}

// StartStream spawns a goroutine that reads from r until it fails.
func StartStream(r io.Reader, hold time.Duration) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		keys: NewTracker(hold),
		now:  time.Now,
	}
	br := bufio.NewReader(r)
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes without blocking.
func (s *Stream) Poll() []event.Event {
	var buf []byte
	closed := false
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	evs := s.parse(buf, s.now())
	if closed && !s.eof {
		s.eof = true
		evs = append(evs, event.Quit{})
	}
	return evs
}

// escWait is how long a trailing ESC waits for the rest of its sequence
// before it counts as the Escape key.
const escWait = 50 * time.Millisecond

// parse converts a batch of bytes read at now into events. An escape
// sequence cut off at the end of buf is kept and finished by the next call.
func (s *Stream) parse(buf []byte, now time.Time) []event.Event {
	var evs []event.Event
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, k, ok := scanEscape(buf[i:])
			if !ok {
				if s.escSince.IsZero() {
					s.escSince = now
				}
				if now.Sub(s.escSince) < escWait {
					s.pending = append([]byte(nil), buf[i:]...)
					break
				}
				// Nothing followed in time: a lone ESC is the key, a cut sequence is dropped.
				s.escSince = time.Time{}
				if len(buf)-i == 1 {
					evs = s.keys.Press(event.KeyEscape, now, evs)
				}
				break
			}
			s.escSince = time.Time{}
			if k != event.KeyNone {
				evs = s.keys.Press(k, now, evs)
			}
			i += n - 1
			continue
		}

		k, quit := keyForRune(rune(b))
		if quit {
			evs = append(evs, event.Quit{})
			continue
		}
		if k != event.KeyNone {
			evs = s.keys.Press(k, now, evs)
		}
	}
	return s.keys.Expire(now, evs)
}

// scanEscape reads the escape sequence at the start of b. n is the number of
// bytes it spans and k the key it maps to, KeyNone for sequences the game
// does not use. ok is false while the sequence is still incomplete.
func scanEscape(b []byte) (n int, k event.Key, ok bool) {
	if len(b) < 2 {
		return 0, event.KeyNone, false
	}
	if b[1] != '[' {
		return 1, event.KeyEscape, true
	}
	// CSI: parameter and intermediate bytes, then a final byte in 0x40-0x7E.
	for j := 2; j < len(b); j++ {
		c := b[j]
		switch {
		case c >= 0x40 && c <= 0x7e:
			if j == 2 {
				switch c {
				case 'A':
					k = event.KeyForward
				case 'B':
					k = event.KeyBack
				case 'C':
					k = event.KeyRight
				case 'D':
					k = event.KeyLeft
				}
			}
			return j + 1, k, true
		case c < 0x20 || c > 0x7e:
			// malformed; drop what was read so far
			return j, event.KeyNone, true
		}
	}
	return 0, event.KeyNone, false
}
