// SPDX-License-Identifier: MIT

// Package linkedlist provides a minimal singly-linked node type and the
// classic in-place pointer reversal.
//
// Ownership:
//
//	Each Node owns its Next reference. Reverse hands ownership of the
//	already-reversed prefix to the node being visited, so at every step the
//	nodes form exactly two disjoint acyclic chains (reversed prefix, rest)
//	and no node is dropped.
//
// Complexity:
//
//   - Reverse:  O(n) time, O(1) memory.
//   - HasCycle: O(n) time, O(1) memory (Floyd tortoise/hare).
//   - FromSlice, Values, Len: O(n).
//
// Lists passed to Values, All and Len must be acyclic; use HasCycle on
// untrusted input.
package linkedlist
