// Package session keeps the most recent order per session token so it can
// be redisplayed later, e.g. on the kitchen view. Storage is in-memory
// only; it is scope/lifetime plumbing around the order core, not
// persistence.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/hotbox-dev/pizzaservice/internal/domain/order"
)

// entry pairs a stored order with its last-touched time for eviction.
type entry struct {
	order   *order.Order
	touched time.Time
}

// Store maps session tokens to the latest order of that session. A
// re-submission replaces the stored order; the previous one is dropped.
type Store struct {
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]*entry
}

// NewStore creates a store whose entries expire ttl after their last
// write or read.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// Put stores the order as the session's current order, replacing any
// previous one.
func (s *Store) Put(token string, o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = &entry{order: o, touched: time.Now()}
}

// Get returns the session's current order, refreshing its expiry. The
// second return value reports whether an order was found.
func (s *Store) Get(token string) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return nil, false
	}
	if time.Since(e.touched) >= s.ttl {
		delete(s.entries, token)
		return nil, false
	}
	e.touched = time.Now()
	return e.order, true
}

// Len returns the number of live sessions. Expired but not yet evicted
// entries are counted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// cleanup drops all entries whose ttl has elapsed.
func (s *Store) cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, e := range s.entries {
		if now.Sub(e.touched) >= s.ttl {
			delete(s.entries, token)
		}
	}
}

// StartCleanup launches a background goroutine that evicts expired
// sessions every half ttl. It stops when ctx is cancelled.
func (s *Store) StartCleanup(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.cleanup(now)
			}
		}
	}()
}
