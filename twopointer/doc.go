// SPDX-License-Identifier: MIT

// Package twopointer implements opposite-end two-pointer scans over
// indexable sequences: pair search in a sorted slice, palindrome checks and
// in-place reversal.
//
// What:
//
//   - FindPairWithSum walks left→ and ←right over a SORTED slice until the
//     two ends sum to the target or the pointers meet.
//   - IsPalindrome / IsPalindromeFunc compare significant runes from both
//     ends (letters and any Unicode number), skipping everything else,
//     case-insensitively.
//   - Reverse, ReverseRange and Rotate swap elements in place.
//
// Why:
//
//   - Each pointer moves monotonically, so every scan touches at most n
//     elements and needs O(1) extra space.
//
// Complexity:
//
//   - FindPairWithSum: O(n) time, O(1) memory.
//   - IsPalindrome:    O(n) time, O(n) memory for the rune view of s.
//   - Reverse:         O(n) time, O(1) memory.
//   - Rotate:          O(n) time, O(1) memory (three reversals).
//
// Preconditions:
//
//   - FindPairWithSum requires non-decreasing input. Unsorted input is NOT
//     detected: the result is undefined (a spurious pair or a missed one).
//   - Integer overflow is NOT a precondition: a sum that wraps past T's range
//     is ordered as larger (or smaller) than any target of type T.
//
// Errors:
//
//   - ErrPairNotFound:    no i<j with s[i]+s[j]==target.
//   - ErrIndexOutOfRange: ReverseRange bounds outside [0,len(s)) or lo>hi.
package twopointer
