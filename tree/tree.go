// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tree implements a generic n-ary tree.
//
// Every [Node] exclusively owns its children; a Node MUST NOT be added to more
// than one parent, nor to any of its own descendants.
package tree

import (
	"iter"
)

// A Node is a value and an ordered list of child nodes.
type Node[T any] struct {
	Value    T
	children []*Node[T]
}

// New returns a Node carrying `value` with the specified children, in order.
// Nil children are ignored.
func New[T any](value T, children ...*Node[T]) *Node[T] {
	n := &Node[T]{Value: value}
	for _, c := range children {
		n.Add(c)
	}
	return n
}

// Build is equivalent to `New(value, build()...)`, allowing a tree to be
// written with its children nested inline.
func Build[T any](value T, build func() []*Node[T]) *Node[T] {
	return New(value, build()...)
}

// Add appends `child` to the node's children. It is a no-op if `child` is nil.
func (n *Node[T]) Add(child *Node[T]) {
	if child == nil {
		return
	}
	n.children = append(n.children, child)
}

// Children returns the node's children, in order. The returned slice MUST NOT
// be modified.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// Count returns the number of nodes in the subtree rooted at `n`, including
// `n` itself. It is recomputed on every call.
func (n *Node[T]) Count() int {
	c := 1
	for _, child := range n.children {
		c += child.Count()
	}
	return c
}

// All returns a pre-order iterator over the subtree rooted at `n`: `n` first,
// then each child's entire subtree in order.
func (n *Node[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.walk(yield)
	}
}

func (n *Node[T]) walk(yield func(*Node[T]) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Values is equivalent to [Node.All] but yields node values.
func (n *Node[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for m := range n.All() {
			if !yield(m.Value) {
				return
			}
		}
	}
}

// FindFunc returns the first node, in pre-order, whose value satisfies `fn`.
func (n *Node[T]) FindFunc(fn func(T) bool) (*Node[T], bool) {
	for m := range n.All() {
		if fn(m.Value) {
			return m, true
		}
	}
	return nil, false
}

// Find returns the first node, in pre-order, whose value equals `v`.
func Find[T comparable](n *Node[T], v T) (*Node[T], bool) {
	return n.FindFunc(func(x T) bool { return x == v })
}

// Equal reports whether `a` and `b` have equal values and pairwise [Equal]
// children.
func Equal[T comparable](a, b *Node[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but uses `eq` to compare values.
func EqualFunc[T, U any](a *Node[T], b *Node[U], eq func(T, U) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !eq(a.Value, b.Value) || len(a.children) != len(b.children) {
		return false
	}
	for i, c := range a.children {
		if !EqualFunc(c, b.children[i], eq) {
			return false
		}
	}
	return true
}
