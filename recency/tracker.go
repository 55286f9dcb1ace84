// SPDX-License-Identifier: MIT

package recency

import (
	"fmt"
	"iter"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Option customizes a Tracker at construction time.
type Option[K comparable, V any] func(*Tracker[K, V])

// WithOnEvict registers fn to be called for every key evicted by Touch or
// EvictOldestIfOver. Explicit Remove calls do not trigger it.
// Panics on nil.
func WithOnEvict[K comparable, V any](fn func(key K, marker V)) Option[K, V] {
	if fn == nil {
		panic("recency: WithOnEvict(nil)")
	}
	return func(t *Tracker[K, V]) { t.onEvict = fn }
}

// Tracker is a bounded recency map.
//
// Invariants:
//   - No key appears twice.
//   - Len() <= Limit() after every Touch.
//   - Eviction always removes exactly the least-recently-touched key.
type Tracker[K comparable, V any] struct {
	lru     *simplelru.LRU[K, V]
	limit   int
	onEvict func(K, V)

	// last entry dropped by the LRU, captured from its eviction callback
	lastKey    K
	lastMarker V
}

// New creates an empty Tracker holding at most limit keys.
// Returns ErrInvalidLimit if limit <= 0.
func New[K comparable, V any](limit int, opts ...Option[K, V]) (*Tracker[K, V], error) {
	if limit <= 0 {
		return nil, fmt.Errorf("New(%d): %w", limit, ErrInvalidLimit)
	}
	t := &Tracker[K, V]{limit: limit}
	for _, opt := range opts {
		opt(t)
	}
	lru, err := simplelru.NewLRU[K, V](limit, func(k K, v V) {
		t.lastKey, t.lastMarker = k, v
	})
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", limit, err)
	}
	t.lru = lru

	return t, nil
}

// Touch marks key as most recently used. An existing key keeps its marker;
// a new key is stored with marker. If the insertion pushed the size past
// the limit, the least-recently-touched key is evicted and returned.
// Complexity: O(1).
func (t *Tracker[K, V]) Touch(key K, marker V) (evicted K, ok bool) {
	if _, hit := t.lru.Get(key); hit {
		return evicted, false
	}
	if !t.lru.Add(key, marker) {
		return evicted, false
	}
	evicted = t.lastKey
	if t.onEvict != nil {
		t.onEvict(evicted, t.lastMarker)
	}

	return evicted, true
}

// EvictOldestIfOver removes exactly one least-recently-touched key when
// Len() > limit. It never removes more than one entry per call.
func (t *Tracker[K, V]) EvictOldestIfOver(limit int) (evicted K, ok bool) {
	if t.lru.Len() <= limit {
		return evicted, false
	}
	k, v, ok := t.lru.RemoveOldest()
	if ok && t.onEvict != nil {
		t.onEvict(k, v)
	}

	return k, ok
}

// Contains reports whether key is tracked, without changing its recency.
func (t *Tracker[K, V]) Contains(key K) bool { return t.lru.Contains(key) }

// Peek returns key's marker without changing its recency.
func (t *Tracker[K, V]) Peek(key K) (V, bool) { return t.lru.Peek(key) }

// Remove drops key. It reports whether the key was present.
func (t *Tracker[K, V]) Remove(key K) bool { return t.lru.Remove(key) }

// Len returns the number of tracked keys.
func (t *Tracker[K, V]) Len() int { return t.lru.Len() }

// Limit returns the configured size limit.
func (t *Tracker[K, V]) Limit() int { return t.limit }

// Keys returns all keys ordered most recent → least recent.
func (t *Tracker[K, V]) Keys() []K {
	keys := t.lru.Keys() // oldest → newest
	for l, r := 0, len(keys)-1; l < r; l, r = l+1, r-1 {
		keys[l], keys[r] = keys[r], keys[l]
	}

	return keys
}

// Recent yields keys from most recent to least recent.
// The order is snapshotted when iteration starts.
func (t *Tracker[K, V]) Recent() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range t.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}

// Oldest yields keys from least recent to most recent.
// The order is snapshotted when iteration starts.
func (t *Tracker[K, V]) Oldest() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range t.lru.Keys() {
			if !yield(k) {
				return
			}
		}
	}
}
