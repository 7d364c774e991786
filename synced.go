package chash

import "sync"

// Synced guards a Table with a read/write mutex so it can be shared between
// goroutines. Get takes the read lock; everything that mutates takes the
// write lock.
type Synced[V any] struct {
	mu sync.RWMutex
	t  *Table[V]
}

// NewSynced creates a Table with opts and wraps it
func NewSynced[V any](opts ...Option) (*Synced[V], error) {
	t, err := New[V](opts...)
	if err != nil {
		return nil, err
	}
	return &Synced[V]{t: t}, nil
}

func (s *Synced[V]) Insert(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.t.Insert(key, value)
}

func (s *Synced[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Get(key)
}

func (s *Synced[V]) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.t.Remove(key)
}

func (s *Synced[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Len()
}

func (s *Synced[V]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.t.Stats()
}

// Close closes the underlying table
func (s *Synced[V]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.t.Close()
}
