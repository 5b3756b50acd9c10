package cache

import "time"

// Bucket is a typed view over a Store for values of one kind.
// A stored value of a different dynamic type is reported as absent.
type Bucket[T any] struct {
	store *Store
	kind  Kind
}

// NewBucket makes a typed view of store for entries of the given kind
func NewBucket[T any](store *Store, kind Kind) *Bucket[T] {
	return &Bucket[T]{store: store, kind: kind}
}

// Get returns the value under key if present, unexpired and of type T
func (b *Bucket[T]) Get(key string) (T, bool) {
	var zero T
	v, ok := b.store.Get(key, b.kind)
	if !ok {
		return zero, false
	}
	res, ok := v.(T)
	if !ok {
		return zero, false
	}
	return res, true
}

// Set stores value under key for ttl
func (b *Bucket[T]) Set(key string, value T, ttl time.Duration) {
	b.store.Set(key, value, ttl, b.kind)
}
