package event

// Queue is the dispatcher's FIFO command queue. It is owned by the game loop
// goroutine; entities reach it only through the Poster interface.
type Queue struct {
	items []Event
	head  int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{items: make([]Event, 0, 64)}
}

// Post appends ev to the tail.
func (q *Queue) Post(ev Event) {
	q.items = append(q.items, ev)
}

// Next pops the head event. ok is false when the queue is empty.
func (q *Queue) Next() (ev Event, ok bool) {
	if q.head >= len(q.items) {
		q.reset()
		return nil, false
	}
	ev = q.items[q.head]
	q.items[q.head] = nil
	q.head++
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Clear drops every pending event.
func (q *Queue) Clear() {
	clear(q.items)
	q.reset()
}

func (q *Queue) reset() {
	q.items = q.items[:0]
	q.head = 0
}
