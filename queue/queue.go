// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements generic first-in-first-out and priority queues.
package queue

import (
	"iter"

	"github.com/ava-labs/containers/internal/ring"
)

// A Queue is a FIFO container with constant-time removal from the front. The
// zero value is an empty Queue. A Queue is not safe for concurrent use.
type Queue[T any] struct {
	r ring.Ring[T]
}

// New returns a Queue holding `items`, the first of which is at the front.
func New[T any](items ...T) *Queue[T] {
	q := new(Queue[T])
	q.Grow(len(items))
	for _, x := range items {
		q.Append(x)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.r.Len()
}

// IsEmpty returns whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.r.Len() == 0
}

// Append adds `x` to the back of the queue.
func (q *Queue[T]) Append(x T) {
	q.r.PushBack(x)
}

// Dequeue removes and returns the front of the queue, or false if the queue is
// empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.r.PopFront()
}

// First returns the front of the queue without removing it.
func (q *Queue[T]) First() (T, bool) {
	return q.r.PeekFront()
}

// Last returns the back of the queue without removing it.
func (q *Queue[T]) Last() (T, bool) {
	return q.r.PeekBack()
}

// Grow increases the queue's allocated buffer to hold up to `n` items. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (q *Queue[T]) Grow(n int) {
	q.r.Grow(n)
}

// All returns an iterator over the queue's elements, front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range q.r.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// A Prioritized value exposes an integer priority. Higher values are dequeued
// first.
type Prioritized interface {
	Priority() int
}

// DequeueByPriority removes and returns the element of `q` with the greatest
// priority, or false if `q` is empty. Of equal-priority elements, the one
// closest to the front is chosen. It is O(q.Len()); see [Priority] for a
// logarithmic alternative with the same ordering.
func DequeueByPriority[T Prioritized](q *Queue[T]) (T, bool) {
	var (
		best  int
		found bool
		bestP int
	)
	for i, x := range q.r.All() {
		if p := x.Priority(); !found || p > bestP {
			best, bestP, found = i, p, true
		}
	}
	if !found {
		var zero T
		return zero, false
	}
	return q.r.RemoveAt(best)
}
