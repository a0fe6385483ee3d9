// Package input converts terminal key presses into game events.
//
// Terminals report key presses but not releases. A key counts as held while
// it keeps repeating; once it has not been seen for the hold duration it is
// reported as released.
package input

import (
	"time"

	"github.com/tomz197/spaceship/internal/event"
)

// Tracker synthesizes KeyDown/KeyUp pairs from a stream of presses.
type Tracker struct {
	hold     time.Duration
	lastSeen map[event.Key]time.Time
	order    []event.Key // held keys in press order, for deterministic release order
}

// NewTracker creates a tracker that releases keys after hold without repeats.
func NewTracker(hold time.Duration) *Tracker {
	return &Tracker{
		hold:     hold,
		lastSeen: make(map[event.Key]time.Time),
	}
}

// Press records k at now. A KeyDown is appended only when k was not already held.
func (t *Tracker) Press(k event.Key, now time.Time, out []event.Event) []event.Event {
	if _, held := t.lastSeen[k]; !held {
		t.order = append(t.order, k)
		out = append(out, event.KeyDown{Key: k})
	}
	t.lastSeen[k] = now
	return out
}

// Expire appends a KeyUp for every held key not seen within the hold duration.
func (t *Tracker) Expire(now time.Time, out []event.Event) []event.Event {
	kept := t.order[:0]
	for _, k := range t.order {
		if now.Sub(t.lastSeen[k]) >= t.hold {
			delete(t.lastSeen, k)
			out = append(out, event.KeyUp{Key: k})
			continue
		}
		kept = append(kept, k)
	}
	t.order = kept
	return out
}

// Held reports whether k is currently down.
func (t *Tracker) Held(k event.Key) bool {
	_, ok := t.lastSeen[k]
	return ok
}

// keyForRune maps printable keys. quit is set for keys that end the game outright.
func keyForRune(r rune) (k event.Key, quit bool) {
	switch r {
	case 'q', 'Q', '\x03': // ctrl-c arrives as a byte in raw mode
		return event.KeyNone, true
	case 'a', 'A':
		return event.KeyLeft, false
	case 'd', 'D':
		return event.KeyRight, false
	case 'w', 'W':
		return event.KeyForward, false
	case 's', 'S':
		return event.KeyBack, false
	case ' ':
		return event.KeySpace, false
	case 'r', 'R':
		return event.KeyRestart, false
	case 'f', 'F':
		return event.KeyFullscreen, false
	case '\x1b':
		return event.KeyEscape, false
	}
	return event.KeyNone, false
}
