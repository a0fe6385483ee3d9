// Package schedule holds delayed events until their timeout elapses.
package schedule

import (
	"slices"
	"time"

	"github.com/tomz197/spaceship/internal/entity"
	"github.com/tomz197/spaceship/internal/event"
)

// Handle identifies a scheduled entry by its insertion sequence.
type Handle uint64

// Expired is an entry whose timeout has elapsed.
type Expired struct {
	Handle    Handle
	Payload   event.Event
	Target    entity.Handle
	remaining time.Duration
}

type entry struct {
	seq       Handle
	remaining time.Duration
	payload   event.Event
	target    entity.Handle
}

// Scheduler keeps pending delayed events in insertion order.
// Entries cannot be cancelled; an entry whose target has died still fires and
// the caller decides where the payload goes.
type Scheduler struct {
	pending []entry
	nextSeq Handle
	expired []Expired // reused between ticks
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{nextSeq: 1}
}

// Schedule registers payload to fire after delay. A zero target means the
// payload belongs to the dispatcher. Negative delays are treated as zero.
func (s *Scheduler) Schedule(delay time.Duration, payload event.Event, target entity.Handle) Handle {
	if delay < 0 {
		delay = 0
	}
	h := s.nextSeq
	s.nextSeq++
	s.pending = append(s.pending, entry{
		seq:       h,
		remaining: delay,
		payload:   payload,
		target:    target,
	})
	return h
}

// Tick decrements every pending entry by elapsed and returns those whose
// remaining time dropped to zero or below. Entries that expire together come
// back ordered by how far past their deadline they are (earliest deadline
// first), ties in insertion order. Pending entries keep their relative order.
//
// The returned slice is only valid until the next call.
func (s *Scheduler) Tick(elapsed time.Duration) []Expired {
	s.expired = s.expired[:0]

	kept := s.pending[:0]
	for _, e := range s.pending {
		e.remaining -= elapsed
		if e.remaining <= 0 {
			s.expired = append(s.expired, Expired{
				Handle:    e.seq,
				Payload:   e.payload,
				Target:    e.target,
				remaining: e.remaining,
			})
			continue
		}
		kept = append(kept, e)
	}
	clear(s.pending[len(kept):])
	s.pending = kept

	// pending is in insertion order, so a stable sort keeps FIFO among equals
	slices.SortStableFunc(s.expired, func(a, b Expired) int {
		switch {
		case a.remaining < b.remaining:
			return -1
		case a.remaining > b.remaining:
			return 1
		default:
			return 0
		}
	})
	return s.expired
}

// Len returns the number of pending entries.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Remaining returns the time left on entry h, or false if h already fired.
func (s *Scheduler) Remaining(h Handle) (time.Duration, bool) {
	for _, e := range s.pending {
		if e.seq == h {
			return e.remaining, true
		}
	}
	return 0, false
}

// Pending counts entries for target h whose payload prints like sample.
// Used by diagnostics and tests to check which timers an entity has armed.
func (s *Scheduler) Pending(sample event.Event, h entity.Handle) int {
	n := 0
	for _, e := range s.pending {
		if e.target == h && e.payload.String() == sample.String() {
			n++
		}
	}
	return n
}
