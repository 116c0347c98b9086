// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

// Package cmputils provides [cmp] options for comparing containers, which
// otherwise hide their contents in unexported fields.
package cmputils

import (
	"slices"

	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/containers/deque"
	"github.com/ava-labs/containers/queue"
	"github.com/ava-labs/containers/stack"
	"github.com/ava-labs/containers/tree"
)

// Containers returns the union of [Stacks], [Queues], [Deques] and [Nodes] for
// elements of type `T`.
func Containers[T any]() cmp.Option {
	return cmp.Options{
		Stacks[T](),
		Queues[T](),
		Deques[T](),
		Nodes[T](),
	}
}

// Stacks returns a [cmp.Transformer] comparing [stack.Stack] pointers by their
// elements, bottom to top.
func Stacks[T any]() cmp.Option {
	return cmp.Transformer("stack.Stack", func(s *stack.Stack[T]) []T {
		if s == nil {
			return nil
		}
		return slices.Collect(s.All())
	})
}

// Queues returns a [cmp.Transformer] comparing [queue.Queue] pointers by their
// elements, front to back.
func Queues[T any]() cmp.Option {
	return cmp.Transformer("queue.Queue", func(q *queue.Queue[T]) []T {
		if q == nil {
			return nil
		}
		return slices.Collect(q.All())
	})
}

// Deques returns a [cmp.Transformer] comparing [deque.Deque] pointers by their
// elements, front to back.
func Deques[T any]() cmp.Option {
	return cmp.Transformer("deque.Deque", func(d *deque.Deque[T]) []T {
		if d == nil {
			return nil
		}
		return slices.Collect(d.All())
	})
}

// node exposes the unexported fields of a [tree.Node] to [cmp].
type node[T any] struct {
	Value    T
	Children []*tree.Node[T]
}

// Nodes returns a [cmp.Transformer] comparing [tree.Node] pointers by value
// and, recursively, children.
func Nodes[T any]() cmp.Option {
	return cmp.Transformer("tree.Node", func(n *tree.Node[T]) *node[T] {
		if n == nil {
			return nil
		}
		out := &node[T]{Value: n.Value}
		if c := n.Children(); len(c) > 0 {
			out.Children = c
		}
		return out
	})
}
