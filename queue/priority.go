// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "container/heap"

// A Priority is a priority queue. The zero value is valid. It wraps a
// [heap.Interface] and exposes methods with the same complexity as the [heap]
// package's functions.
//
// Elements are popped in descending order of [Prioritized.Priority], with ties
// broken by order of insertion. This is the same order as repeatedly calling
// [DequeueByPriority] on a [Queue] to which the same elements were appended.
type Priority[T Prioritized] struct {
	p   priority[T]
	seq uint64
}

// Len returns the number of items in the queue.
func (p *Priority[T]) Len() int {
	return p.p.Len()
}

// Push adds an item to the queue.
func (p *Priority[T]) Push(x T) {
	heap.Push(&p.p, entry[T]{val: x, pri: x.Priority(), seq: p.seq})
	p.seq++
}

// Peek returns the first value in the queue without removing it.
func (p *Priority[T]) Peek() (T, bool) {
	if p.p.Len() == 0 {
		var zero T
		return zero, false
	}
	return p.p[0].val, true
}

// Pop removes and returns the first element from the queue, or false if the
// queue is empty.
func (p *Priority[T]) Pop() (T, bool) {
	if p.p.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&p.p).(entry[T]).val, true
}

// Grow increase's the queue's allocated buffer to hold up to `n` items. This
// does not place a limit on the size of the queue, but pre-allocates memory.
func (p *Priority[T]) Grow(n int) {
	if n <= cap(p.p) {
		return
	}
	b := make(priority[T], len(p.p), n)
	copy(b, p.p)
	p.p = b
}

// entry caches the element's priority so that it is constant for the
// element's lifetime in the heap.
type entry[T any] struct {
	val T
	pri int
	seq uint64
}

// priority implements [heap.Interface].
type priority[T any] []entry[T]

func (p priority[T]) Len() int {
	return len(p)
}

func (p priority[T]) Less(i, j int) bool {
	if p[i].pri != p[j].pri {
		return p[i].pri > p[j].pri
	}
	return p[i].seq < p[j].seq
}

func (p priority[T]) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p *priority[T]) Push(x any) {
	*p = append(*p, x.(entry[T]))
}

func (p *priority[T]) Pop() any {
	old := *p
	n := len(old) - 1
	x := old[n]
	old[n] = entry[T]{}
	*p = old[:n]
	return x
}
