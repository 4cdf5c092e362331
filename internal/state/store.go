// Package state holds the canonical application snapshot.
//
// The Store owns the only mutable reference to the board collection. It is
// replaced wholesale on every successful mutation; anyone holding an older
// snapshot keeps seeing a consistent, unchanged value.
package state

import (
	"sync"

	"github.com/Chandra-Moulii/project-planner/internal/models"
)

// Listener is called with every newly committed snapshot.
type Listener func(models.Snapshot)

// UpdateFunc derives the next snapshot from the current one. Returning an
// error discards the result and leaves the store unchanged.
type UpdateFunc func(current models.Snapshot) (models.Snapshot, error)

// Store holds the current snapshot and its subscribers.
type Store struct {
	mu      sync.Mutex
	snap    models.Snapshot
	version uint64

	// deliverMu is taken before mu by every committer and held until its
	// listeners return, so deliveries follow commit order while mu stays
	// free for readers.
	deliverMu sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// New creates a store seeded with an initial snapshot.
func New(initial models.Snapshot) *Store {
	return &Store{
		snap:      initial,
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Version counts committed snapshots since the store was created.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Replace publishes next as the current snapshot unconditionally.
func (s *Store) Replace(next models.Snapshot) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	listeners := s.commitLocked(next)
	s.mu.Unlock()

	deliver(listeners, next)
}

// Update runs fn against the current snapshot and publishes its result.
// The read and the replace happen under one lock, so no concurrent update
// can slip in between and a stale read is never written back.
func (s *Store) Update(fn UpdateFunc) (models.Snapshot, error) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	next, err := fn(s.snap)
	if err != nil {
		cur := s.snap
		s.mu.Unlock()
		return cur, err
	}
	listeners := s.commitLocked(next)
	s.mu.Unlock()

	deliver(listeners, next)
	return next, nil
}

// commitLocked publishes next and returns the listeners to notify. It must
// be called with mu held.
func (s *Store) commitLocked(next models.Snapshot) []Listener {
	s.snap = next
	s.version++
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

func deliver(listeners []Listener, snap models.Snapshot) {
	for _, l := range listeners {
		l(snap)
	}
}

// Subscribe registers a listener for future commits. Listeners may read the
// store but must not call Update or Replace synchronously. The returned function removes the listener.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}
