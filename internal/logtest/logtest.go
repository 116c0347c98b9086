// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logtest provides a [logging.Logger] that records entries for
// inspection by tests.
package logtest

import (
	"slices"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewRecorder constructs a new [Recorder] at the specified level.
func NewRecorder(level logging.Level) *Recorder {
	return &Recorder{
		level:   level,
		records: new([]*Record),
	}
}

// A Recorder is a [logging.Logger] that stores all logs as [Record] entries.
// Loggers derived with [Recorder.With] share the parent's records.
type Recorder struct {
	level   logging.Level
	with    []zap.Field
	records *[]*Record
	// Some methods will panic, in which case they need to be implemented. This
	// is better than embedding a [logging.NoLog], which could silently drop
	// important entries.
	logging.Logger
}

var _ logging.Logger = (*Recorder)(nil)

// A Record is a single entry in a [Recorder].
type Record struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// FieldMap returns the record's fields keyed by name.
func (r *Record) FieldMap() map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range r.Fields {
		f.AddTo(enc)
	}
	return enc.Fields
}

func (l *Recorder) With(fields ...zap.Field) logging.Logger {
	return &Recorder{
		level:   l.level,
		with:    slices.Concat(l.with, fields),
		records: l.records,
	}
}

func (l *Recorder) Enabled(lvl logging.Level) bool {
	return lvl >= l.level
}

func (l *Recorder) log(lvl logging.Level, msg string, fields ...zap.Field) {
	if !l.Enabled(lvl) {
		return
	}
	*l.records = append(*l.records, &Record{
		Level:  lvl,
		Msg:    msg,
		Fields: slices.Concat(l.with, fields),
	})
}

func (l *Recorder) Verbo(msg string, fs ...zap.Field) { l.log(logging.Verbo, msg, fs...) }
func (l *Recorder) Debug(msg string, fs ...zap.Field) { l.log(logging.Debug, msg, fs...) }
func (l *Recorder) Trace(msg string, fs ...zap.Field) { l.log(logging.Trace, msg, fs...) }
func (l *Recorder) Info(msg string, fs ...zap.Field)  { l.log(logging.Info, msg, fs...) }
func (l *Recorder) Warn(msg string, fs ...zap.Field)  { l.log(logging.Warn, msg, fs...) }
func (l *Recorder) Error(msg string, fs ...zap.Field) { l.log(logging.Error, msg, fs...) }
func (l *Recorder) Fatal(msg string, fs ...zap.Field) { l.log(logging.Fatal, msg, fs...) }

// Records returns all recorded logs.
func (l *Recorder) Records() []*Record {
	return *l.records
}

// Filter returns the recorded logs for which `fn` returns true.
func (l *Recorder) Filter(fn func(*Record) bool) []*Record {
	var out []*Record
	for _, r := range *l.records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// At returns all recorded logs at the specified [logging.Level].
func (l *Recorder) At(lvl logging.Level) []*Record {
	return l.Filter(func(r *Record) bool { return r.Level == lvl })
}

// AtLeast returns all recorded logs at or above the specified [logging.Level].
func (l *Recorder) AtLeast(lvl logging.Level) []*Record {
	return l.Filter(func(r *Record) bool { return r.Level >= lvl })
}
