package events

import (
	"sync/atomic"

	"github.com/lixenwraith/termtris/constants"
)

// Queue is a lock-free MPSC ring buffer for game events.
//
// Thread-safety:
//   - Push: lock-free CAS, safe for concurrent producers
//   - Drain: single consumer (the game loop)
//   - published flags keep the consumer from reading partial writes
//
// Overflow drops the oldest events; emission is fire-and-forget.
type Queue struct {
	events    [constants.EventQueueSize]Event
	published [constants.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // read index
	tail      atomic.Uint64 // write index
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, claiming a slot via CAS and marking it
// published only after the write completes
func (q *Queue) Push(ev Event) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}
		idx := tail & constants.EventBufferMask

		q.events[idx] = ev
		q.published[idx].Store(true) // must follow the write

		// Advance head past overwritten slots
		head := q.head.Load()
		if tail+1-head > constants.EventQueueSize {
			q.head.CompareAndSwap(head, tail+1-constants.EventQueueSize)
		}
		return
	}
}

// Drain returns all pending events in FIFO order and advances the
// read index. Stops early at any slot whose writer has not finished.
func (q *Queue) Drain() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return nil
		}

		avail := tail - head
		if avail > constants.EventQueueSize {
			avail = constants.EventQueueSize
			head = tail - constants.EventQueueSize
		}

		out := make([]Event, 0, avail)
		for i := uint64(0); i < avail; i++ {
			idx := (head + i) & constants.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			out = append(out, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}
