// SPDX-License-Identifier: MIT

package twopointer

import "errors"

var (
	// ErrPairNotFound indicates that no two distinct positions sum to the target.
	ErrPairNotFound = errors.New("twopointer: no pair sums to target")

	// ErrIndexOutOfRange indicates an invalid [lo,hi] range for ReverseRange.
	ErrIndexOutOfRange = errors.New("twopointer: index out of range")
)
