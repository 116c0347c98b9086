// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashing provides structural hashing of comparable values.
package hashing

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// A Hasher accumulates a structural hash over a sequence of values and
// lengths.
type Hasher struct {
	d   *xxhash.Digest
	buf []byte
}

// New returns a new, empty Hasher.
func New() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Len writes a length, delimiting the values that follow it.
func (h *Hasher) Len(n int) {
	h.buf = binary.BigEndian.AppendUint64(h.buf[:0], uint64(n))
	_, _ = h.d.Write(h.buf)
}

// Value writes the Go-syntax representation of `x`, prefixed by its length.
// Values that are == produce identical writes, with the exception of floats
// equal only by IEEE 754 (e.g. 0 and -0).
func Value[T comparable](h *Hasher, x T) {
	h.buf = fmt.Appendf(h.buf[:0], "%T:%#v", x, x)
	n := len(h.buf)
	h.buf = binary.BigEndian.AppendUint64(h.buf, uint64(n))
	_, _ = h.d.Write(h.buf[n:])
	_, _ = h.d.Write(h.buf[:n])
}

// Sum64 returns the hash of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}
