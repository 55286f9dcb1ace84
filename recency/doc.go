// SPDX-License-Identifier: MIT

// Package recency tracks keys in least-recently-used order with a bounded
// size.
//
// What:
//
//   - Tracker[K,V] maps each key to a caller-chosen marker and keeps a strict
//     total order of "most recently touched".
//   - Touch promotes an existing key (marker unchanged) or inserts a new one
//     as most recent; when the tracker grows past its limit the single
//     least-recently-touched key is evicted.
//   - Recent / Oldest enumerate keys lazily as iter.Seq, newest-first or
//     oldest-first. Each range starts from a fresh snapshot, so sequences are
//     finite and restartable.
//
// Ordering primitive:
//
//	The order lives in the doubly-linked eviction list of
//	github.com/hashicorp/golang-lru/v2/simplelru. A touch moves the element
//	to the front, so no two keys ever share a position and ties cannot occur.
//
// Complexity:
//
//   - Touch, Contains, Peek, Remove, EvictOldestIfOver: O(1).
//   - Keys, Recent, Oldest: O(n) per enumeration.
//
// Errors:
//
//   - ErrInvalidLimit: New called with limit <= 0.
//
// A Tracker is not safe for concurrent use; guard it externally.
package recency
