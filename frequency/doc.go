// SPDX-License-Identifier: MIT

// Package frequency counts item occurrences and answers ranking queries
// with a deterministic tie-break.
//
// What:
//
//   - Count / CountSeq build a Table in one linear pass.
//   - Table.TopK returns the k most frequent items, count descending.
//   - Table.ItemsWithCount returns items seen exactly n times; Unique is n=1.
//
// Tie-break:
//
//	Items with equal counts are ordered by first appearance. The table keeps
//	a first-seen index per item and TopK sorts stably over that order, so
//	results never depend on map iteration order.
//
// Invariants:
//
//   - Total() equals the number of items processed.
//   - Get returns 0 for an item never seen.
//
// Complexity:
//
//   - Count:          O(n) time, O(d) memory (d = distinct items).
//   - TopK:           O(d log d) time, O(d) memory.
//   - ItemsWithCount: O(d) time.
//
// Errors:
//
//   - ErrNegativeK: TopK called with k < 0.
package frequency
