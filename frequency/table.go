// SPDX-License-Identifier: MIT

package frequency

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Entry pairs an item with its occurrence count.
type Entry[T comparable] struct {
	Item  T
	Count int
}

// Table maps items to occurrence counts and remembers first-seen order.
// The zero value is not usable; create tables with NewTable or Count.
type Table[T comparable] struct {
	index  map[T]int // item → position in order
	order  []T       // distinct items, first-seen order
	counts []int     // counts[i] belongs to order[i]
	total  int
}

// NewTable returns an empty Table.
func NewTable[T comparable]() *Table[T] {
	return &Table[T]{index: make(map[T]int)}
}

// Count builds a Table from items in a single pass.
func Count[T comparable](items []T) *Table[T] {
	t := NewTable[T]()
	for _, it := range items {
		t.Add(it)
	}

	return t
}

// CountSeq builds a Table from any finite sequence.
func CountSeq[T comparable](items iter.Seq[T]) *Table[T] {
	t := NewTable[T]()
	for it := range items {
		t.Add(it)
	}

	return t
}

// Add records one occurrence of item.
// Complexity: O(1) amortized.
func (t *Table[T]) Add(item T) {
	i, ok := t.index[item]
	if !ok {
		i = len(t.order)
		t.index[item] = i
		t.order = append(t.order, item)
		t.counts = append(t.counts, 0)
	}
	t.counts[i]++
	t.total++
}

// Get returns the count for item, 0 if never seen.
func (t *Table[T]) Get(item T) int {
	if i, ok := t.index[item]; ok {
		return t.counts[i]
	}

	return 0
}

// Total returns the number of items processed.
func (t *Table[T]) Total() int { return t.total }

// Distinct returns the number of distinct items.
func (t *Table[T]) Distinct() int { return len(t.order) }

// Items returns the distinct items in first-seen order.
func (t *Table[T]) Items() []T { return slices.Clone(t.order) }

// Entries returns every (item, count) pair in first-seen order.
func (t *Table[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(t.order))
	for i, it := range t.order {
		out[i] = Entry[T]{Item: it, Count: t.counts[i]}
	}

	return out
}

// TopK returns the min(k, Distinct()) most frequent items ordered by
// non-increasing count; equal counts keep first-seen order.
// Returns ErrNegativeK if k < 0.
func (t *Table[T]) TopK(k int) ([]Entry[T], error) {
	if k < 0 {
		return nil, fmt.Errorf("TopK(%d): %w", k, ErrNegativeK)
	}
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return entries[:min(k, len(entries))], nil
}

// ItemsWithCount returns items seen exactly n times, in first-seen order.
func (t *Table[T]) ItemsWithCount(n int) []T {
	var out []T
	for i, it := range t.order {
		if t.counts[i] == n {
			out = append(out, it)
		}
	}

	return out
}

// Unique returns items seen exactly once, in first-seen order.
func (t *Table[T]) Unique() []T { return t.ItemsWithCount(1) }
