// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/containers/internal/logtest"
)

func ptr[T any](x T) *T { return &x }

func TestPlayground(t *testing.T) {
	f, err := os.Open("testdata/playground.yaml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	scenarios, err := Load(f)
	require.NoError(t, err, "Load()")
	require.Len(t, scenarios, 6)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			log := logtest.NewRecorder(logging.Debug)
			tr, err := Run(log, s)
			require.NoErrorf(t, err, "Run()\n%s", tr)
			assert.Len(t, tr.Results, len(s.Steps))
			assert.Empty(t, log.AtLeast(logging.Warn), "logs at WARN or above")
			assert.Len(t, log.At(logging.Debug), len(s.Steps), "DEBUG logs")
		})
	}
}

func TestRunReportsAllFailures(t *testing.T) {
	s := Scenario{
		Name:      "bad",
		Container: Stack,
		Steps: []Step{
			{Op: "pop", Want: ptr("x")},
			{Op: "push", Value: "y"},
			{Op: "peek", Want: ptr("y")},
			{Op: "pop", Want: ptr("z")},
		},
	}

	log := logtest.NewRecorder(logging.Info)
	tr, err := Run(log, s)
	require.ErrorIs(t, err, ErrStepsFailed)

	if diff := cmp.Diff([]int{0, 3}, tr.Failed()); diff != "" {
		t.Errorf("Failed() diff (-want +got):\n%s", diff)
	}

	warns := log.At(logging.Warn)
	require.Len(t, warns, 2, "WARN logs")
	fields := warns[0].FieldMap()
	assert.Equal(t, "bad", fields["scenario"])
	assert.Equal(t, None, fields["got"])
	assert.Equal(t, "x", fields["want"])

	assert.Len(t, log.At(logging.Info), 1, "INFO logs")
	assert.Empty(t, log.At(logging.Debug), "DEBUG logs below recorder level")
}

func TestRunMalformed(t *testing.T) {
	tests := []struct {
		name string
		s    Scenario
		want error
	}{
		{
			name: "unknown_container",
			s:    Scenario{Container: "bag"},
			want: ErrUnknownContainer,
		},
		{
			name: "unknown_op",
			s:    Scenario{Container: Queue, Steps: []Step{{Op: "push", Value: "x"}}},
			want: ErrUnknownOp,
		},
		{
			name: "missing_value",
			s:    Scenario{Container: Deque, Steps: []Step{{Op: "contains"}}},
			want: ErrMissingValue,
		},
		{
			name: "unknown_parent",
			s: Scenario{Container: Tree, Steps: []Step{
				{Op: "add", Value: "A"},
				{Op: "add", Value: "B", Parent: "Z"},
			}},
			want: ErrUnknownParent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(logging.NoLog{}, tt.s)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "valid",
			yaml: "scenarios:\n  - {name: s, container: deque, steps: [{op: len, want: '0'}]}\n",
		},
		{
			name:    "unknown_container",
			yaml:    "scenarios:\n  - {name: s, container: bag}\n",
			wantErr: ErrUnknownContainer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown_field", func(t *testing.T) {
		_, err := Load(strings.NewReader("scenarios:\n  - {name: s, container: stack, colour: red}\n"))
		require.Error(t, err)
	})
}

func TestHeapMatchesPriority(t *testing.T) {
	steps := func(op string) []Step {
		var out []Step
		for i, p := range []int{2, 7, 2, 0, 7, 5} {
			out = append(out, Step{Op: op, Value: fmt.Sprint(i), Priority: p})
		}
		return out
	}
	drain := func(op string, n int) []Step {
		out := make([]Step, n+1)
		for i := range out {
			out[i] = Step{Op: op}
		}
		return out
	}

	results := func(tr *Transcript) []string {
		var got []string
		for _, r := range tr.Results[6:] {
			got = append(got, r.Got)
		}
		return got
	}

	pri, err := Run(logging.NoLog{}, Scenario{Container: Priority, Steps: append(steps("append"), drain("dequeue", 6)...)})
	require.NoError(t, err)
	heap, err := Run(logging.NoLog{}, Scenario{Container: Heap, Steps: append(steps("push"), drain("pop", 6)...)})
	require.NoError(t, err)

	want := []string{"1", "4", "5", "0", "2", "3", None}
	if diff := cmp.Diff(want, results(pri)); diff != "" {
		t.Errorf("priority dequeue diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(results(pri), results(heap)); diff != "" {
		t.Errorf("heap pop vs priority dequeue diff (-want +got):\n%s", diff)
	}
}

func TestTranscriptString(t *testing.T) {
	tr, err := Run(logging.NoLog{}, Scenario{
		Name:      "s",
		Container: Stack,
		Steps: []Step{
			{Op: "push", Value: "a"},
			{Op: "pop", Want: ptr("b")},
		},
	})
	require.ErrorIs(t, err, ErrStepsFailed)

	want := "s\n" +
		"    0  push a -> 1\n" +
		"    1  pop -> a (want b)\n"
	assert.Equal(t, want, tr.String())
}
