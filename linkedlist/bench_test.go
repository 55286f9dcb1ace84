package linkedlist_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/linkedlist"
)

// BenchmarkReverse flips a 100k-node list back and forth.
func BenchmarkReverse(b *testing.B) {
	const N = 100000
	vals := make([]int, N)
	head := linkedlist.FromSlice(vals)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		head = linkedlist.Reverse(head)
	}
}
