package event

import (
	"sync/atomic"
)

// Queue capacity, must be a power of two
const (
	QueueSize = 256
	queueMask = QueueSize - 1
)

// Queue is a lock-free MPSC ring buffer handing input from a host's reader
// goroutine to the caller's update loop
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (update loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [QueueSize]Event
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

// Push adds event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(ev Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & queueMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > QueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume appends all pending events to dst[:0] in FIFO order and advances head
// Pass a dst with QueueSize capacity to stay allocation-free
func (q *Queue) Consume(dst []Event) []Event {
	dst = dst[:0]
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return dst
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > QueueSize {
			maxAvailable = QueueSize
			currentHead = currentTail - QueueSize
		}

		dst = dst[:0]
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & queueMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}
			dst = append(dst, q.events[idx])
		}

		newHead := currentHead + uint64(len(dst))
		if q.head.CompareAndSwap(currentHead, newHead) {
			for i := uint64(0); i < uint64(len(dst)); i++ {
				q.published[(currentHead+i)&queueMask].Store(false)
			}
			return dst
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > QueueSize {
		return QueueSize
	}
	return diff
}
