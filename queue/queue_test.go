// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func all[T any](q *Queue[T]) []T {
	var got []T
	for {
		x, ok := q.Dequeue()
		if !ok {
			break
		}
		got = append(got, x)
	}
	return got
}

func TestFIFO(t *testing.T) {
	diff := func(t *testing.T, got, want []int) {
		t.Helper()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%T.Dequeue() until !ok; diff (-want +got):\n%s", Queue[int]{}, diff)
		}
	}

	t.Run("disjoint_Append_Dequeue", func(t *testing.T) {
		var q Queue[int]

		var want []int
		for i := range 5 {
			q.Append(i)
			want = append(want, i)
		}
		diff(t, all(&q), want)

		if _, ok := q.Dequeue(); ok {
			t.Errorf("%T.Dequeue() after draining got ok == true", q)
		}
	})

	t.Run("interleaved_Append_Dequeue", func(t *testing.T) {
		var q Queue[int]

		rng := rand.New(rand.NewPCG(0, 0)) //nolint:gosec // Reproducibility is useful in tests

		var got, want []int
		for i := range 1000 {
			q.Append(i)
			want = append(want, i)

			if rng.IntN(4) == 0 {
				x, ok := q.Dequeue()
				if ok {
					got = append(got, x)
				}
			}
		}

		got = append(got, all(&q)...)
		diff(t, got, want)
	})
}

func TestFirstLast(t *testing.T) {
	var q Queue[string]
	if _, ok := q.First(); ok {
		t.Error("First() on empty queue got ok == true")
	}
	if _, ok := q.Last(); ok {
		t.Error("Last() on empty queue got ok == true")
	}

	q.Append("a")
	q.Append("b")
	q.Append("c")

	for range 2 {
		first, _ := q.First()
		last, _ := q.Last()
		assert.Equal(t, "a", first, "First()")
		assert.Equal(t, "c", last, "Last()")
		assert.Equal(t, 3, q.Len(), "Len() after First() and Last()")
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, slices.Collect(q.All())); diff != "" {
		t.Errorf("All() diff (-want +got):\n%s", diff)
	}
}

func TestDequeueByPriority(t *testing.T) {
	q := New(
		Work{"a", 3},
		Work{"b", 1},
		Work{"c", 4},
		Work{"d", 1},
		Work{"e", 5},
	)

	var got []Work
	for {
		w, ok := DequeueByPriority(q)
		if !ok {
			break
		}
		got = append(got, w)
	}

	want := []Work{
		{"e", 5},
		{"c", 4},
		{"a", 3},
		{"b", 1}, // first-seen wins the tie
		{"d", 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DequeueByPriority() until !ok; diff (-want +got):\n%s", diff)
	}
	assert.True(t, q.IsEmpty(), "IsEmpty() after draining")
}

func TestDequeueByPriorityPreservesRemainder(t *testing.T) {
	q := New(Work{"a", 1}, Work{"b", 9}, Work{"c", 1})
	w, _ := DequeueByPriority(q)
	assert.Equal(t, "b", w.Name)

	want := []Work{{"a", 1}, {"c", 1}}
	if diff := cmp.Diff(want, slices.Collect(q.All())); diff != "" {
		t.Errorf("All() after DequeueByPriority() diff (-want +got):\n%s", diff)
	}
}
