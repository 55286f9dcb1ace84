package linkedlist_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/linkedlist"
)

// TestReverse_Empty returns nil for the empty list.
func TestReverse_Empty(t *testing.T) {
	assert.Nil(t, linkedlist.Reverse[int](nil))
	assert.Nil(t, linkedlist.FromSlice[int](nil))
}

// TestReverse_Single returns the same node with a nil successor.
func TestReverse_Single(t *testing.T) {
	head := linkedlist.FromSlice([]int{7})
	got := linkedlist.Reverse(head)
	assert.Same(t, head, got)
	assert.Nil(t, got.Next)
	assert.Equal(t, []int{7}, linkedlist.Values(got))
}

// TestReverse_Five checks values, acyclicity and node identity.
func TestReverse_Five(t *testing.T) {
	head := linkedlist.FromSlice([]int{1, 2, 3, 4, 5})
	var nodes []*linkedlist.Node[int]
	for n := head; n != nil; n = n.Next {
		nodes = append(nodes, n)
	}

	rev := linkedlist.Reverse(head)

	require.False(t, linkedlist.HasCycle(rev))
	assert.Equal(t, 5, linkedlist.Len(rev))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, linkedlist.Values(rev))
	assert.Same(t, nodes[4], rev, "old tail becomes head")
	assert.Nil(t, nodes[0].Next, "old head becomes tail")
}

// TestReverse_Involution reverses twice for several lengths.
func TestReverse_Involution(t *testing.T) {
	for n := 0; n <= 8; n++ {
		in := make([]string, n)
		for i := range in {
			in[i] = string(rune('a' + i))
		}
		head := linkedlist.Reverse(linkedlist.Reverse(linkedlist.FromSlice(in)))
		got := linkedlist.Values(head)
		if n == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, in, got, "n=%d", n)
	}
}

// TestAll_EarlyStop stops ranging after two values.
func TestAll_EarlyStop(t *testing.T) {
	head := linkedlist.FromSlice([]int{1, 2, 3})
	var got []int
	for v := range linkedlist.All(head) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(linkedlist.All(head)))
}

// TestHasCycle detects a tail-to-middle back edge.
func TestHasCycle(t *testing.T) {
	assert.False(t, linkedlist.HasCycle[int](nil))

	head := linkedlist.FromSlice([]int{1, 2, 3, 4})
	assert.False(t, linkedlist.HasCycle(head))

	tail := head
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = head.Next
	assert.True(t, linkedlist.HasCycle(head))

	self := &linkedlist.Node[int]{Value: 1}
	self.Next = self
	assert.True(t, linkedlist.HasCycle(self))
}
