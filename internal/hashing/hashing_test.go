// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sum[T comparable](xs ...T) uint64 {
	h := New()
	h.Len(len(xs))
	for _, x := range xs {
		Value(h, x)
	}
	return h.Sum64()
}

func TestValue(t *testing.T) {
	type pair struct {
		A int
		B string
	}

	assert.Equal(t, sum(1, 2, 3), sum(1, 2, 3), "equal ints")
	assert.NotEqual(t, sum(1, 2, 3), sum(3, 2, 1), "reordered ints")
	assert.Equal(t, sum(pair{1, "x"}), sum(pair{1, "x"}), "equal structs")
	assert.NotEqual(t, sum(pair{1, "x"}), sum(pair{1, "y"}), "different structs")
	// Length prefixes stop concatenations from colliding.
	assert.NotEqual(t, sum("ab", "c"), sum("a", "bc"), "split strings")
	assert.NotEqual(t, sum[int](), sum(0), "empty vs zero")
}

func TestValueDistinguishesTypes(t *testing.T) {
	assert.NotEqual(t, sum[any](int(1)), sum[any](uint(1)), "int vs uint behind interface")
}
