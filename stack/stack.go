// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack implements a generic last-in-first-out container.
package stack

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ava-labs/libevm/rlp"

	"github.com/ava-labs/containers/internal/hashing"
)

// A Stack is a LIFO container. The zero value is an empty Stack. A Stack is
// not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// New returns a Stack holding `items`, the last of which is the top.
func New[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Push places `x` on top of the stack.
func (s *Stack[T]) Push(x T) {
	s.items = append(s.items, x)
}

// Pop removes and returns the top of the stack, or false if the stack is
// empty.
func (s *Stack[T]) Pop() (T, bool) {
	x, ok := s.Peek()
	if !ok {
		return x, false
	}
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return x, true
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// All returns an iterator over the stack's elements, bottom to top.
func (s *Stack[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// String renders the stack bottom to top, e.g. `[1, 2, 3]`. Strings are
// quoted.
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range s.items {
		if i > 0 {
			b.WriteString(", ")
		}
		switch x := any(x).(type) {
		case string:
			fmt.Fprintf(&b, "%q", x)
		default:
			fmt.Fprintf(&b, "%v", x)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether `a` and `b` hold equal elements in the same order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return slices.Equal(a.items, b.items)
}

// EqualFunc is like [Equal] but uses `eq` to compare elements.
func EqualFunc[T, U any](a *Stack[T], b *Stack[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.items, b.items, eq)
}

// Hash returns a structural hash of the stack. Stacks that are [Equal] have
// equal hashes.
func Hash[T comparable](s *Stack[T]) uint64 {
	h := hashing.New()
	h.Len(len(s.items))
	for _, x := range s.items {
		hashing.Value(h, x)
	}
	return h.Sum64()
}

var (
	_ rlp.Encoder      = (*Stack[uint64])(nil)
	_ rlp.Decoder      = (*Stack[uint64])(nil)
	_ json.Marshaler   = (*Stack[uint64])(nil)
	_ json.Unmarshaler = (*Stack[uint64])(nil)
	_ fmt.Stringer     = (*Stack[uint64])(nil)
)

// EncodeRLP encodes the stack as an RLP list of its elements, bottom to top.
// It returns an error if `T` is not RLP-serializable.
func (s *Stack[T]) EncodeRLP(w io.Writer) error {
	items := s.items
	if items == nil {
		items = []T{}
	}
	return rlp.Encode(w, items)
}

// DecodeRLP is the inverse of [Stack.EncodeRLP].
func (s *Stack[T]) DecodeRLP(st *rlp.Stream) error {
	var items []T
	if err := st.Decode(&items); err != nil {
		return fmt.Errorf("decode %T: %w", s, err)
	}
	s.items = items
	return nil
}

// MarshalJSON encodes the stack as a JSON array, bottom to top.
func (s *Stack[T]) MarshalJSON() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON is the inverse of [Stack.MarshalJSON].
func (s *Stack[T]) UnmarshalJSON(buf []byte) error {
	var items []T
	if err := json.Unmarshal(buf, &items); err != nil {
		return err
	}
	s.items = items
	return nil
}
