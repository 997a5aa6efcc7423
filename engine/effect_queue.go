package engine

import (
	"github.com/lixenwraith/bubbles/gesture"
)

// EffectQueueSize is the ring capacity; must be a power of two
const (
	EffectQueueSize = 64
	effectQueueMask = EffectQueueSize - 1
)

// EffectQueue is a fixed ring buffer of pending effect requests
// Producer (pointer input) and consumer (frame) run on the same goroutine, so no synchronization
//
// Overflow: oldest requests are overwritten when full
type EffectQueue struct {
	events [EffectQueueSize]gesture.EffectRequest
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEffectQueue() *EffectQueue {
	return &EffectQueue{}
}

// Push appends a request, dropping the oldest one when full
func (q *EffectQueue) Push(req gesture.EffectRequest) {
	q.events[q.tail&effectQueueMask] = req
	q.tail++
	if q.tail-q.head > EffectQueueSize {
		q.head = q.tail - EffectQueueSize
	}
}

// Drain calls fn for every pending request in FIFO order and empties the queue
// Returns the number of requests delivered
func (q *EffectQueue) Drain(fn func(gesture.EffectRequest)) int {
	n := 0
	for q.head != q.tail {
		req := q.events[q.head&effectQueueMask]
		q.head++
		fn(req)
		n++
	}
	return n
}

// Len returns pending request count
func (q *EffectQueue) Len() int {
	return int(q.tail - q.head)
}
