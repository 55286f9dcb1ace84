package recency_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/recency"
)

// BenchmarkTracker_Touch cycles 2×limit keys so half the touches evict.
func BenchmarkTracker_Touch(b *testing.B) {
	const limit = 1024
	tr, err := recency.New[int, struct{}](limit)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Touch(i%(2*limit), struct{}{})
	}
}
