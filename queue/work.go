// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

// Work is a named unit of work with a priority.
type Work struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"priority" yaml:"priority"`
}

var _ Prioritized = Work{}

// Priority returns `w.Level`.
func (w Work) Priority() int {
	return w.Level
}
