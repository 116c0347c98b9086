// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ava-labs/libevm/rlp"

	"github.com/ava-labs/containers/internal/hashing"
)

var (
	_ rlp.Encoder      = (*Node[string])(nil)
	_ rlp.Decoder      = (*Node[string])(nil)
	_ json.Marshaler   = (*Node[string])(nil)
	_ json.Unmarshaler = (*Node[string])(nil)
)

// rlpNode is the RLP form of a [Node]: `[value, [child, ...]]`.
type rlpNode[T any] struct {
	Value    T
	Children []*Node[T]
}

// EncodeRLP encodes the subtree rooted at `n`. It returns an error if `T` is
// not RLP-serializable.
func (n *Node[T]) EncodeRLP(w io.Writer) error {
	children := n.children
	if children == nil {
		children = []*Node[T]{}
	}
	return rlp.Encode(w, rlpNode[T]{
		Value:    n.Value,
		Children: children,
	})
}

// DecodeRLP is the inverse of [Node.EncodeRLP].
func (n *Node[T]) DecodeRLP(s *rlp.Stream) error {
	var r rlpNode[T]
	if err := s.Decode(&r); err != nil {
		return fmt.Errorf("decode %T: %w", n, err)
	}
	*n = *New(r.Value, r.Children...)
	return nil
}

type jsonNode[T any] struct {
	Value    T          `json:"value"`
	Children []*Node[T] `json:"children,omitempty"`
}

// MarshalJSON encodes the subtree rooted at `n` as
// `{"value":v,"children":[...]}`. The children are omitted for leaves.
func (n *Node[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode[T]{
		Value:    n.Value,
		Children: n.children,
	})
}

// UnmarshalJSON is the inverse of [Node.MarshalJSON].
func (n *Node[T]) UnmarshalJSON(buf []byte) error {
	var j jsonNode[T]
	if err := json.Unmarshal(buf, &j); err != nil {
		return err
	}
	*n = *New(j.Value, j.Children...)
	return nil
}

// Hash returns a structural hash of the subtree rooted at `n`. Trees that are
// [Equal] have equal hashes.
func Hash[T comparable](n *Node[T]) uint64 {
	h := hashing.New()
	for m := range n.All() {
		hashing.Value(h, m.Value)
		h.Len(len(m.children))
	}
	return h.Sum64()
}
