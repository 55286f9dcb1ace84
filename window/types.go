// SPDX-License-Identifier: MIT

package window

import "github.com/VividCortex/ewma"

// Number is the set of element types a Window can aggregate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Option customizes a Window before its first Push.
type Option func(*config)

// config collects resolved options.
type config struct {
	smoothing bool
}

// WithSmoothing enables the EWMA companion aggregate (see Window.Smoothed).
func WithSmoothing() Option {
	return func(c *config) { c.smoothing = true }
}

// Window is a fixed-capacity FIFO ring buffer.
//
// Invariants:
//   - 0 <= size <= len(buf).
//   - buf[head] is the oldest element when size > 0.
//   - Aggregates read only the size live elements; nothing of an evicted
//     value is retained.
type Window[T Number] struct {
	buf  []T // ring storage, len == capacity
	head int // index of the oldest element
	size int // number of live elements

	avg    ewma.MovingAverage // nil unless WithSmoothing
	pushes uint64             // total pushes since New/Reset, for EWMA warm-up
}
