package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spaceship/internal/event"
)

// TcellSource turns tcell key events into game events.
type TcellSource struct {
	events chan tcell.Event
	keys   *Tracker
	now    func() time.Time
	eof    bool
}

// NewTcellSource starts pumping events from s. The pump stops when the
// screen is finalized.
func NewTcellSource(s tcell.Screen, hold time.Duration) *TcellSource {
	t := &TcellSource{
		events: make(chan tcell.Event, 100),
		keys:   NewTracker(hold),
		now:    time.Now,
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()
	return t
}

// Poll drains pending screen events without blocking.
func (t *TcellSource) Poll() []event.Event {
	now := t.now()
	var evs []event.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				if !t.eof {
					t.eof = true
					evs = append(evs, event.Quit{})
				}
				return t.keys.Expire(now, evs)
			}
			evs = t.translate(ev, now, evs)
		default:
			return t.keys.Expire(now, evs)
		}
	}
}

func (t *TcellSource) translate(ev tcell.Event, now time.Time, out []event.Event) []event.Event {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return out
	}

	var k event.Key
	switch kev.Key() {
	case tcell.KeyCtrlC:
		return append(out, event.Quit{})
	case tcell.KeyEscape:
		k = event.KeyEscape
	case tcell.KeyLeft:
		k = event.KeyLeft
	case tcell.KeyRight:
		k = event.KeyRight
	case tcell.KeyUp:
		k = event.KeyForward
	case tcell.KeyDown:
		k = event.KeyBack
	case tcell.KeyRune:
		var quit bool
		k, quit = keyForRune(kev.Rune())
		if quit {
			return append(out, event.Quit{})
		}
	}
	if k == event.KeyNone {
		return out
	}
	return t.keys.Press(k, now, out)
}
