// SPDX-License-Identifier: MIT

package linkedlist

import "iter"

// Node is a single element of a singly-linked list.
// A nil *Node represents the empty list.
type Node[T any] struct {
	Value T
	Next  *Node[T]
}

// FromSlice links values in order and returns the head, or nil when empty.
func FromSlice[T any](values []T) *Node[T] {
	var head, tail *Node[T]
	for _, v := range values {
		n := &Node[T]{Value: v}
		if tail == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}

	return head
}

// Reverse reverses the list in place and returns the new head.
//
// Algorithm:
//
//	prev = nil, cur = head
//	while cur != nil:
//	    next     = cur.Next   // save the rest
//	    cur.Next = prev       // flip the link
//	    prev     = cur        // grow the reversed prefix
//	    cur      = next       // advance
//	return prev
//
// Reverse(nil) is nil; a single node is returned unchanged.
func Reverse[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	cur := head
	for cur != nil {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}

	return prev
}

// All yields node values from head forward.
func All[T any](head *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := head; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values collects node values from head forward.
func Values[T any](head *Node[T]) []T {
	var out []T
	for v := range All(head) {
		out = append(out, v)
	}

	return out
}

// Len returns the number of nodes reachable from head.
func Len[T any](head *Node[T]) int {
	n := 0
	for ; head != nil; head = head.Next {
		n++
	}

	return n
}

// HasCycle reports whether following Next from head ever revisits a node.
// The slow pointer moves one step and the fast pointer two; they meet iff a
// cycle exists.
func HasCycle[T any](head *Node[T]) bool {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return true
		}
	}

	return false
}
