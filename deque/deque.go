// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package deque implements a generic double-ended queue.
package deque

import (
	"iter"

	"github.com/ava-labs/containers/internal/ring"
)

// A Deque is a double-ended queue with amortised constant-time insertion and
// removal at both ends. The zero value is an empty Deque. A Deque is not safe
// for concurrent use.
type Deque[T any] struct {
	r ring.Ring[T]
}

// New returns a Deque holding `items`, the first of which is at the front.
func New[T any](items ...T) *Deque[T] {
	return &Deque[T]{r: *ring.New(items...)}
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int { return d.r.Len() }

// IsEmpty returns whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool { return d.r.Len() == 0 }

// Prepend inserts `x` at the front.
func (d *Deque[T]) Prepend(x T) { d.r.PushFront(x) }

// Append inserts `x` at the back.
func (d *Deque[T]) Append(x T) { d.r.PushBack(x) }

// DequeueFront removes and returns the front element, or false if empty.
func (d *Deque[T]) DequeueFront() (T, bool) { return d.r.PopFront() }

// DequeueBack removes and returns the back element, or false if empty.
func (d *Deque[T]) DequeueBack() (T, bool) { return d.r.PopBack() }

// First returns the front element without removing it.
func (d *Deque[T]) First() (T, bool) { return d.r.PeekFront() }

// Last returns the back element without removing it.
func (d *Deque[T]) Last() (T, bool) { return d.r.PeekBack() }

// At returns the i'th element from the front, or false if `i` is out of range.
func (d *Deque[T]) At(i int) (T, bool) { return d.r.At(i) }

// All returns an iterator over the deque's elements, front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range d.r.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// IndexFunc returns the lowest index `i` for which `fn(d.At(i))` is true.
func (d *Deque[T]) IndexFunc(fn func(T) bool) (int, bool) {
	for i, x := range d.r.All() {
		if fn(x) {
			return i, true
		}
	}
	return 0, false
}

// Index returns the lowest index at which `x` is stored.
func Index[T comparable](d *Deque[T], x T) (int, bool) {
	return d.IndexFunc(func(y T) bool { return x == y })
}

// Contains reports whether `x` is stored in `d`.
func Contains[T comparable](d *Deque[T], x T) bool {
	_, ok := Index(d, x)
	return ok
}
