// SPDX-License-Identifier: MIT

package twopointer

import "unicode"

// IsAlphanumeric is the default significance predicate used by IsPalindrome.
// It accepts letters and every numeric category (Nd, Nl, No), so runes such
// as '½' and 'Ⅻ' count.
func IsAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsPalindrome reports whether s reads the same in both directions once
// non-alphanumeric runes are dropped and letter case is ignored.
// The empty string (or one with no significant runes) is a palindrome.
//
// Example:
//
//	IsPalindrome("A man, a plan, a canal: Panama") // true
//	IsPalindrome("hello")                          // false
func IsPalindrome(s string) bool {
	return IsPalindromeFunc(s, IsAlphanumeric)
}

// IsPalindromeFunc is IsPalindrome with a caller-supplied significance
// predicate. A nil predicate falls back to IsAlphanumeric.
//
// Both skip phases are bounded by left < right, so a string made only of
// insignificant runes terminates without comparing anything.
//
// Complexity: O(n) time, O(n) memory for the rune slice.
func IsPalindromeFunc(s string, significant func(rune) bool) bool {
	if significant == nil {
		significant = IsAlphanumeric
	}
	runes := []rune(s)
	left, right := 0, len(runes)-1

	for left < right {
		for left < right && !significant(runes[left]) {
			left++
		}
		for left < right && !significant(runes[right]) {
			right--
		}
		if !equalFold(runes[left], runes[right]) {
			return false
		}
		left++
		right--
	}

	return true
}

// equalFold reports whether a and b are equal under simple Unicode case folding.
func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}

	return false
}
