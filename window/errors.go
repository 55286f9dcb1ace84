// SPDX-License-Identifier: MIT

package window

import "errors"

var (
	// ErrInvalidCapacity indicates a non-positive window capacity.
	ErrInvalidCapacity = errors.New("window: capacity must be positive")

	// ErrInsufficientData indicates an aggregate was requested before enough values arrived.
	ErrInsufficientData = errors.New("window: insufficient data")

	// ErrSmoothingDisabled indicates Smoothed was called on a window built without WithSmoothing.
	ErrSmoothingDisabled = errors.New("window: smoothing not enabled")
)
