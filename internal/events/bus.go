package events

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrQueueFull is returned by Notify when at least one subscriber's queue
// had no room for the event. Other subscribers still receive it.
var ErrQueueFull = errors.New("event queue full")

// DefaultQueueSize is the per-subscriber buffer used when none is given.
const DefaultQueueSize = 100

// Bus fans notifications out to in-process subscribers. Sends never block:
// a subscriber that stops draining its channel loses events instead of
// stalling the mutation that produced them.
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	closed      bool // Prevent double-close panics

	sequence atomic.Int64
	dropped  atomic.Int64
	now      func() time.Time
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[int]chan Event),
		now:         time.Now,
	}
}

// Subscribe returns a channel receiving every future event and a function
// that unsubscribes and closes the channel. queueSize <= 0 uses
// DefaultQueueSize.
func (b *Bus) Subscribe(queueSize int) (<-chan Event, func()) {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ch := make(chan Event, queueSize)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subscribers[id]; ok {
			delete(b.subscribers, id)
			close(sub)
		}
	}
}

// Notify stamps the event with a sequence number (and a timestamp when
// missing) and queues it for every subscriber.
func (b *Bus) Notify(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.New("event bus closed")
	}
	// Numbered under mu so queues receive events in sequence order.
	event.SequenceID = b.sequence.Add(1)

	var full bool
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			full = true
			b.dropped.Add(1)
		}
	}
	if full {
		return ErrQueueFull
	}
	return nil
}

// Dropped returns the number of deliveries lost to full queues.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Close closes every subscriber channel. Further events are rejected.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	return nil
}
