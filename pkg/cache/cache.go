// Package cache implements the in-memory TTL/LRU store shared by the news list, AI enrichment and
// topic analysis layers, together with the key and TTL policy used to populate it.
//
// The store is bounded by item count. Each entry carries its own expiration; an expired entry is
// reported as absent on lookup but stays in memory until the periodic sweep or LRU eviction removes it.
package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

// DefaultMaxItems is the store capacity used when Options.MaxItems is not set
const DefaultMaxItems = 500

// Kind tags an entry with the layer it belongs to, used for per-layer analytics
type Kind string

// entry kinds
const (
	KindGeneric Kind = "generic"
	KindAI      Kind = "ai"
	KindNewsAPI Kind = "newsApi"
)

// Entry is a single cached value with its timestamps
type Entry struct {
	Key          string
	Data         any
	Kind         Kind
	CreatedAt    time.Time
	ExpiresAt    time.Time
	LastAccessed time.Time
}

// Options configures a Store
type Options struct {
	MaxItems int              // capacity, DefaultMaxItems if zero
	Now      func() time.Time // clock, time.Now if nil
}

// Store is a bounded key-value store with per-entry TTL and LRU eviction.
// It is safe for concurrent use; every operation runs as a single critical section.
type Store struct {
	mu        sync.Mutex
	items     map[string]*list.Element // values are *Entry
	order     *list.List               // front is the least recently used key
	maxItems  int
	now       func() time.Time
	analytics analytics

	// cleanup loop, see sweeper.go
	cancel func()
	wg     sync.WaitGroup
}

// New makes a store with the given options
func New(opts Options) *Store {
	if opts.MaxItems <= 0 {
		opts.MaxItems = DefaultMaxItems
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		items:     make(map[string]*list.Element),
		order:     list.New(),
		maxItems:  opts.MaxItems,
		now:       opts.Now,
		analytics: analytics{lastCleanup: opts.Now()},
	}
}

// Get returns the value stored under key. Unknown and expired keys are both reported as absent
// and counted as misses. A hit moves the key to the most recently used position.
func (s *Store) Get(key string, kind Kind) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	elem, ok := s.items[key]
	if !ok {
		s.analytics.record(kind, false)
		return nil, false
	}

	e := elem.Value.(*Entry)
	if now.After(e.ExpiresAt) {
		s.analytics.record(kind, false)
		return nil, false
	}

	e.LastAccessed = now
	s.order.MoveToBack(elem)
	s.analytics.record(kind, true)
	return e.Data, true
}

// Set stores value under key for ttl. Inserting a new key into a full store evicts the least
// recently used key first. Overwriting an existing key replaces its value, TTL and timestamps
// and makes it the most recently used without evicting anything.
func (s *Store) Set(key string, value any, ttl time.Duration, kind Kind) {
	if ttl <= 0 {
		lgr.Printf("[WARN] cache set for %q ignored, non-positive ttl %v", key, ttl)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e := &Entry{Key: key, Data: value, Kind: kind, CreatedAt: now, ExpiresAt: now.Add(ttl), LastAccessed: now}

	if elem, ok := s.items[key]; ok {
		elem.Value = e
		s.order.MoveToBack(elem)
		return
	}

	if len(s.items) >= s.maxItems {
		s.evictLRU()
	}
	s.items[key] = s.order.PushBack(e)
}

// evictLRU drops the least recently used entry, must be called under lock
func (s *Store) evictLRU() {
	front := s.order.Front()
	if front == nil {
		return
	}
	e := s.order.Remove(front).(*Entry)
	delete(s.items, e.Key)
	s.analytics.evictions++
	lgr.Printf("[DEBUG] cache evicted least recently used key %q", e.Key)
}

// Delete removes key and reports whether it was present
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.items[key]
	if !ok {
		return false
	}
	s.order.Remove(elem)
	delete(s.items, key)
	lgr.Printf("[DEBUG] cache item deleted: %s", key)
	return true
}

// Clear removes all entries and returns how many were removed. Analytics are kept.
func (s *Store) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.items)
	s.items = make(map[string]*list.Element)
	s.order.Init()
	lgr.Printf("[INFO] cache cleared, %d items removed", n)
	return n
}

// CleanupExpired physically removes all expired entries and returns their count
func (s *Store) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for elem := s.order.Front(); elem != nil; {
		next := elem.Next()
		e := elem.Value.(*Entry)
		if now.After(e.ExpiresAt) {
			s.order.Remove(elem)
			delete(s.items, e.Key)
			removed++
		}
		elem = next
	}

	s.analytics.lastCleanup = now
	s.analytics.expirations += int64(removed)
	return removed
}

// Len returns the number of physically present entries, expired ones included
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Keys returns present keys from least to most recently used
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]string, 0, len(s.items))
	for elem := s.order.Front(); elem != nil; elem = elem.Next() {
		res = append(res, elem.Value.(*Entry).Key)
	}
	return res
}

// Stats returns a snapshot of size and analytics
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.analytics.stats(len(s.items), s.maxItems)
}
