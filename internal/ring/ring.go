// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ring provides a growable ring buffer with constant-time pushing and
// popping at both ends.
package ring

import "iter"

// A Ring is a slice-like data structure with constant-time popping and
// amortised constant-time pushing at either end. The zero value is an empty
// Ring.
type Ring[T any] struct {
	buf   []T // len(buf) MUST == cap(buf)
	start int // 0 <= start < len(buf), or 0 if len(buf) == 0
	n     int // 0 <= n <= len(buf)
}

// New returns a Ring holding `xs` in order.
func New[T any](xs ...T) *Ring[T] {
	r := new(Ring[T])
	r.Grow(len(xs))
	for _, x := range xs {
		r.PushBack(x)
	}
	return r
}

// Cap returns the capacity of the ring.
func (r *Ring[T]) Cap() int {
	return len(r.buf)
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int {
	return r.n
}

func (r *Ring[T]) mod(i int) int {
	return i % r.Cap()
}

func (r *Ring[T]) index(i int) int {
	return r.mod(r.start + i)
}

func (r *Ring[T]) inRange(i int) bool {
	return i >= 0 && i < r.n
}

// ensureSpace grows the ring if it is at capacity. Capacity is doubled, or set
// to 1 if there is none.
func (r *Ring[T]) ensureSpace() {
	if r.n < r.Cap() {
		return
	}
	grow := 2 * r.Cap()
	if grow == 0 {
		grow = 1
	}
	r.Grow(grow)
}

// PushBack appends `x` to the end of the ring.
func (r *Ring[T]) PushBack(x T) {
	r.ensureSpace()
	r.buf[r.index(r.n)] = x
	r.n++
}

// PushFront inserts `x` before the first element of the ring.
func (r *Ring[T]) PushFront(x T) {
	r.ensureSpace()
	r.start = r.mod(r.start - 1 + r.Cap())
	r.buf[r.start] = x
	r.n++
}

// At returns the i'th element of the ring and true, or false if `i` is not in
// `[0,r.Len())`.
func (r *Ring[T]) At(i int) (T, bool) {
	if !r.inRange(i) {
		var zero T
		return zero, false
	}
	return r.buf[r.index(i)], true
}

// PeekFront returns the first element without removing it.
func (r *Ring[T]) PeekFront() (T, bool) {
	return r.At(0)
}

// PeekBack returns the last element without removing it.
func (r *Ring[T]) PeekBack() (T, bool) {
	return r.At(r.n - 1)
}

func (r *Ring[T]) clearAt(i int) {
	var zero T
	r.buf[r.index(i)] = zero
}

// PopFront removes and returns the first element of the ring, or false if it
// is empty.
func (r *Ring[T]) PopFront() (T, bool) {
	x, ok := r.PeekFront()
	if !ok {
		return x, false
	}
	r.clearAt(0)
	r.start = r.mod(r.start + 1)
	r.n--
	return x, true
}

// PopBack removes and returns the last element of the ring, or false if it is
// empty.
func (r *Ring[T]) PopBack() (T, bool) {
	x, ok := r.PeekBack()
	if !ok {
		return x, false
	}
	r.clearAt(r.n - 1)
	r.n--
	return x, true
}

// RemoveAt removes and returns the i'th element, preserving the order of the
// remaining elements. Whichever side of `i` is shorter is shifted, so removal
// at either end is O(1).
func (r *Ring[T]) RemoveAt(i int) (T, bool) {
	x, ok := r.At(i)
	if !ok {
		return x, false
	}

	if i < r.n/2 {
		for j := i; j > 0; j-- {
			r.buf[r.index(j)] = r.buf[r.index(j-1)]
		}
		r.clearAt(0)
		r.start = r.mod(r.start + 1)
	} else {
		for j := i; j < r.n-1; j++ {
			r.buf[r.index(j)] = r.buf[r.index(j+1)]
		}
		r.clearAt(r.n - 1)
	}
	r.n--
	return x, true
}

// Grow increases the ring's capacity to n, if necessary. It is O(r.Len()).
func (r *Ring[T]) Grow(n int) {
	if n <= r.Cap() {
		return
	}
	b := make([]T, n)
	if r.Cap() > 0 {
		copy(b, r.buf[r.start:])
		copy(b[r.Cap()-r.start:], r.buf[:r.start])
	}

	r.buf = b
	r.start = 0
}

// All returns an iterator over the ring's indices and elements, front to back.
// The ring MUST NOT be modified during iteration.
func (r *Ring[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range r.n {
			if !yield(i, r.buf[r.index(i)]) {
				return
			}
		}
	}
}

// Slice returns a newly allocated slice of the ring's elements, front to back.
func (r *Ring[T]) Slice() []T {
	out := make([]T, 0, r.n)
	for _, x := range r.All() {
		out = append(out, x)
	}
	return out
}
