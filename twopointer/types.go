// SPDX-License-Identifier: MIT

package twopointer

// Number is the set of element types FindPairWithSum can add together.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
