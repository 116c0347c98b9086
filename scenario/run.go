// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package scenario

import (
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

// A Result is the outcome of a single [Step].
type Result struct {
	Step Step
	Got  string
}

// OK returns whether the step had no expectation or met it.
func (r Result) OK() bool {
	return r.Step.Want == nil || *r.Step.Want == r.Got
}

func (r Result) String() string {
	s := r.Step.Op
	if r.Step.Value != "" {
		s += " " + r.Step.Value
	}
	s += " -> " + r.Got
	if !r.OK() {
		s += fmt.Sprintf(" (want %s)", *r.Step.Want)
	}
	return s
}

// A Transcript is the ordered record of every step in a [Scenario].
type Transcript struct {
	Scenario string
	Results  []Result
}

// Failed returns the indices of all results that did not meet expectations.
func (t *Transcript) Failed() []int {
	var idx []int
	for i, r := range t.Results {
		if !r.OK() {
			idx = append(idx, i)
		}
	}
	return idx
}

func (t *Transcript) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", t.Scenario)
	for i, r := range t.Results {
		fmt.Fprintf(&b, "  %3d  %s\n", i, r)
	}
	return b.String()
}

// Run applies every step of `s` to a new, empty container. Steps whose result
// differs from [Step.Want] don't stop the run, but cause an error wrapping
// [ErrStepsFailed] to be returned alongside the full [Transcript]. Any
// malformed step aborts the run.
func Run(log logging.Logger, s Scenario) (*Transcript, error) {
	log = log.With(
		zap.String("scenario", s.Name),
		zap.String("container", string(s.Container)),
	)

	m, err := newMachine(s.Container)
	if err != nil {
		return nil, err
	}

	t := &Transcript{Scenario: s.Name}
	for i, step := range s.Steps {
		got, err := m.apply(step)
		if err != nil {
			return t, fmt.Errorf("step %d: %w", i, err)
		}

		r := Result{Step: step, Got: got}
		t.Results = append(t.Results, r)

		fields := []zap.Field{
			zap.Int("step", i),
			zap.String("op", step.Op),
			zap.String("got", got),
		}
		if r.OK() {
			log.Debug("Step applied", fields...)
			continue
		}
		log.Warn("Unexpected step result", append(fields, zap.String("want", *step.Want))...)
	}

	failed := t.Failed()
	log.Info("Scenario complete",
		zap.Int("steps", len(t.Results)),
		zap.Int("failed", len(failed)),
	)
	if len(failed) > 0 {
		return t, fmt.Errorf("%w: %d of %d in %q: %v", ErrStepsFailed, len(failed), len(t.Results), s.Name, failed)
	}
	return t, nil
}
