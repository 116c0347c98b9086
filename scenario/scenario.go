// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package scenario replays scripted sequences of container operations,
// recording and logging the result of each.
package scenario

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A Kind identifies the container a [Scenario] operates on.
type Kind string

// Supported container kinds.
const (
	Stack    Kind = "stack"
	Queue    Kind = "queue"
	Priority Kind = "priority"
	Heap     Kind = "heap"
	Deque    Kind = "deque"
	Tree     Kind = "tree"
)

// Errors returned by [Load] and [Run].
var (
	ErrUnknownContainer = errors.New("unknown container")
	ErrUnknownOp        = errors.New("unknown operation")
	ErrMissingValue     = errors.New("missing value")
	ErrUnknownParent    = errors.New("unknown parent")
	ErrStepsFailed      = errors.New("steps failed")
)

// A Scenario is a named sequence of steps against a single, initially empty,
// container.
type Scenario struct {
	Name      string `yaml:"name"`
	Container Kind   `yaml:"container"`
	Steps     []Step `yaml:"steps"`
}

// A Step is a single container operation. Which fields are used depends on
// the operation.
type Step struct {
	Op       string `yaml:"op"`
	Value    string `yaml:"value,omitempty"`
	Parent   string `yaml:"parent,omitempty"`
	Priority int    `yaml:"priority,omitempty"`
	// Want, if non-nil, is the expected result of the step.
	Want *string `yaml:"want,omitempty"`
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load parses a YAML document of the form `scenarios: [...]`. Unknown fields
// and containers are rejected.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}
	for i, s := range f.Scenarios {
		if _, err := newMachine(s.Container); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.Name, err)
		}
	}
	return f.Scenarios, nil
}
