// SPDX-License-Identifier: MIT

package twopointer

// FindPairWithSum returns indices i<j such that sorted[i]+sorted[j] == target.
//
// Algorithm:
//  1. left = 0, right = len(sorted)-1.
//  2. While left < right:
//     sum = sorted[left] + sorted[right]
//     sum == target → return (left, right)
//     sum <  target → left++   (need a larger sum)
//     sum >  target → right--  (need a smaller sum)
//  3. Pointers met → ErrPairNotFound.
//
// The sum is ordered against target by compareSum, which treats a sum that
// wrapped past T's range as above or below every representable target, so
// narrow integer types steer the pointers correctly.
//
// The input MUST be sorted in non-decreasing order; this is not checked.
// When several pairs qualify, the one reached first by the scan is returned.
//
// Complexity: O(n) time, O(1) memory.
func FindPairWithSum[T Number](sorted []T, target T) (i, j int, err error) {
	left, right := 0, len(sorted)-1
	for left < right {
		switch c := compareSum(sorted[left], sorted[right], target); {
		case c == 0:
			return left, right, nil
		case c < 0:
			left++
		default:
			right--
		}
	}

	return -1, -1, ErrPairNotFound
}

// compareSum returns the sign of (a+b)-target as if computed without overflow.
//
// Two positives can only wrap to a value below a, and two negatives only to
// a value above a; neither happens for unsigned zero operands or for floats,
// which saturate to ±Inf instead of wrapping.
func compareSum[T Number](a, b, target T) int {
	var zero T
	s := a + b
	switch {
	case a > zero && b > zero && s < a:
		return 1 // true sum exceeds T's maximum
	case a < zero && b < zero && s > a:
		return -1 // true sum is below T's minimum
	case s == target:
		return 0
	case s < target:
		return -1
	}

	return 1
}
