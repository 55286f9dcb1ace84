// SPDX-License-Identifier: MIT

package twopointer

import "fmt"

// Reverse reverses s in place by swapping s[left] and s[right] while the
// pointers have not crossed. Applying it twice restores the original order.
//
// Complexity: O(n) time, O(1) memory.
func Reverse[T any](s []T) {
	for left, right := 0, len(s)-1; left < right; left, right = left+1, right-1 {
		s[left], s[right] = s[right], s[left]
	}
}

// ReverseRange reverses the inclusive sub-slice s[lo..hi] in place.
// Returns ErrIndexOutOfRange if lo<0, hi>=len(s) or lo>hi.
func ReverseRange[T any](s []T, lo, hi int) error {
	if lo < 0 || hi >= len(s) || lo > hi {
		return fmt.Errorf("ReverseRange(%d,%d) on len %d: %w", lo, hi, len(s), ErrIndexOutOfRange)
	}
	Reverse(s[lo : hi+1])

	return nil
}

// Rotate rotates s right by k positions in place using three reversals:
// reverse all, then reverse the first k and the remaining n-k elements.
// Negative k rotates left. k is reduced modulo len(s).
//
// Complexity: O(n) time, O(1) memory.
func Rotate[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	Reverse(s)
	Reverse(s[:k])
	Reverse(s[k:])
}
