// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/VividCortex/ewma"
)

// New creates an empty Window holding at most capacity values.
// Returns ErrInvalidCapacity if capacity <= 0.
// Complexity: O(C) to allocate the ring.
func New[T Number](capacity int, opts ...Option) (*Window[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("New(%d): %w", capacity, ErrInvalidCapacity)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	w := &Window[T]{buf: make([]T, capacity)}
	if cfg.smoothing {
		w.avg = ewma.NewMovingAverage(float64(capacity))
	}

	return w, nil
}

// Push appends v. If the window was already full, the oldest value is
// evicted and returned with ok=true.
// Complexity: O(1).
func (w *Window[T]) Push(v T) (evicted T, ok bool) {
	c := len(w.buf)
	if w.size == c {
		evicted, ok = w.buf[w.head], true
		w.buf[w.head] = v
		w.head = (w.head + 1) % c
	} else {
		w.buf[(w.head+w.size)%c] = v
		w.size++
	}

	w.pushes++
	if w.avg != nil {
		w.avg.Add(float64(v))
	}

	return evicted, ok
}

// Len returns the number of values currently held.
func (w *Window[T]) Len() int { return w.size }

// Cap returns the fixed capacity C.
func (w *Window[T]) Cap() int { return len(w.buf) }

// Full reports whether Len() == Cap().
func (w *Window[T]) Full() bool { return w.size == len(w.buf) }

// Values returns a copy of the live values ordered oldest → newest.
func (w *Window[T]) Values() []T {
	out := make([]T, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}

	return out
}

// Sum returns the sum of exactly the C most recent values, accumulated in T
// from oldest to newest. Narrow integer types wrap on overflow exactly as
// T arithmetic does; use Average for a value computed in float64.
// Returns ErrInsufficientData while the window is not yet full.
// Complexity: O(C).
func (w *Window[T]) Sum() (T, error) {
	var sum T
	if !w.Full() {
		return sum, fmt.Errorf("Sum with %d/%d values: %w", w.size, len(w.buf), ErrInsufficientData)
	}
	for i := 0; i < w.size; i++ {
		sum += w.buf[(w.head+i)%len(w.buf)]
	}

	return sum, nil
}

// Average returns the arithmetic mean of exactly the C most recent values.
// The live values are summed in float64 from oldest to newest on every
// call, so evicted values leave no residue and narrow T cannot overflow.
// Returns ErrInsufficientData while the window is not yet full; a partial
// mean is never reported as a full-window result.
// Complexity: O(C).
func (w *Window[T]) Average() (float64, error) {
	if !w.Full() {
		return 0, fmt.Errorf("Average with %d/%d values: %w", w.size, len(w.buf), ErrInsufficientData)
	}
	var sum float64
	for i := 0; i < w.size; i++ {
		sum += float64(w.buf[(w.head+i)%len(w.buf)])
	}

	return sum / float64(len(w.buf)), nil
}

// Smoothed returns an exponentially weighted moving average over every value
// pushed so far, with an age equal to the window capacity.
//
// For C == ewma.AVG_METRIC_AGE (30) the ewma package hands back its
// SimpleEWMA, which seeds from the first sample instead of averaging a
// warm-up block and reseeds whenever its value is exactly 0. The decay is
// the same 2/(C+1) as for every other capacity; only the seeding differs.
//
// Errors:
//   - ErrSmoothingDisabled if the window was built without WithSmoothing.
//   - ErrInsufficientData until more than ewma.WARMUP_SAMPLES values were pushed.
func (w *Window[T]) Smoothed() (float64, error) {
	if w.avg == nil {
		return 0, ErrSmoothingDisabled
	}
	if w.pushes <= uint64(ewma.WARMUP_SAMPLES) {
		return 0, fmt.Errorf("Smoothed after %d pushes: %w", w.pushes, ErrInsufficientData)
	}

	return w.avg.Value(), nil
}

// Reset empties the window, keeping its capacity and options.
func (w *Window[T]) Reset() {
	clear(w.buf)
	w.head, w.size, w.pushes = 0, 0, 0
	if w.avg != nil {
		w.avg = ewma.NewMovingAverage(float64(len(w.buf)))
	}
}

// MovingAverages returns the mean of every full window of the given capacity
// as it slides over values. The result has len(values)-capacity+1 entries,
// or none when len(values) < capacity.
//
// Example:
//
//	MovingAverages([]int{100, 102, 98, 105}, 3) // [100, 101.666…]
func MovingAverages[T Number](values []T, capacity int) ([]float64, error) {
	w, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, max(0, len(values)-capacity+1))
	for _, v := range values {
		w.Push(v)
		if avg, err := w.Average(); err == nil {
			out = append(out, avg)
		}
	}

	return out, nil
}
