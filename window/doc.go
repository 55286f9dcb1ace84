// SPDX-License-Identifier: MIT

// Package window provides a fixed-capacity sliding window for moving
// aggregates over the most recent C values of a stream.
//
// What:
//
//   - Window[T] is a ring buffer of capacity C. Push appends a value and, once
//     the buffer is full, evicts the oldest one in the same step.
//   - Sum and Average are defined only over a FULL window; before that they
//     return ErrInsufficientData rather than a partial aggregate.
//   - Smoothed (opt-in via WithSmoothing) exposes an exponentially weighted
//     moving average whose age equals C, backed by github.com/VividCortex/ewma.
//     At C == 30 the ewma package returns its SimpleEWMA, which seeds from
//     the first sample rather than a warm-up average (see Window.Smoothed).
//   - MovingAverages is the batch form: one mean per full window position.
//
// Eviction order:
//
//	The ring index head always points at the oldest element. Push overwrites
//	buf[head] when full and advances head, so FIFO order of the remaining C-1
//	values plus the new one is kept without shifting memory.
//
// Complexity:
//
//   - Push:    O(1) time.
//   - Sum:     O(C) time, accumulated in T (wraps like T arithmetic).
//   - Average: O(C) time, accumulated in float64 over the live values only.
//   - Values:  O(C) time and memory (copy, oldest → newest).
//
// Errors:
//
//   - ErrInvalidCapacity:   New called with capacity <= 0.
//   - ErrInsufficientData:  aggregate requested before the window filled.
//   - ErrSmoothingDisabled: Smoothed called without WithSmoothing.
//
// A Window is not safe for concurrent use; guard it externally.
package window
