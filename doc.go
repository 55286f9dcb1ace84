// SPDX-License-Identifier: MIT

// Package lvlinear is a small in-memory toolkit of classic linear-structure
// techniques: opposite-end two-pointer scans, bounded sliding windows,
// recency (LRU) tracking, frequency tables and singly-linked-list reversal.
//
// What is inside?
//
//	twopointer/ — pair-with-sum on sorted slices, palindrome check, in-place reverse/rotate
//	window/     — fixed-capacity ring buffer with full-window Sum/Average and EWMA smoothing
//	recency/    — bounded recency map: Touch, LRU eviction, lazy recency-ordered iteration
//	frequency/  — item counts with deterministic TopK (ties → first seen) and exact-count filters
//	linkedlist/ — generic Node, pointer reversal, Floyd cycle check
//	cmd/lvlinear — demo CLI wiring all of the above
//
// Guarantees:
//
//   - Every primitive is synchronous, deterministic and single-threaded; the
//     caller owns each structure and synchronizes externally if needed.
//   - Invalid construction parameters are rejected by New with a sentinel
//     error; queries on not-yet-ready state return a sentinel instead of a
//     fabricated value.
//   - Packages are independent leaves: none imports another.
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
