// Package xlog provides the leveled Logger used by cmd/bloscpack, extending
// the plain Logger interface of ulikunitz/xz's xlog package with the
// NORMAL/VERBOSE/DEBUG levels SPEC_FULL.md §4.J asks for.
//
// The glog package, full path github.com/golang/glog, provides more
// functionality but depends on flag.Parse() being called, which does not
// fit a library meant to be embedded in other programs.
package xlog

import (
	"io"
	"log"
)

// Level selects which messages a Logger actually emits.
type Level int

const (
	Normal Level = iota
	Verbose
	Debug
)

// Logger is the interface cmd/bloscpack and the root package log through.
type Logger interface {
	Normal(v ...interface{})
	Normalf(format string, v ...interface{})
	Verbose(v ...interface{})
	Verbosef(format string, v ...interface{})
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
}

// stdLogger writes to an underlying *log.Logger, filtering by Level.
type stdLogger struct {
	level Level
	log   *log.Logger
}

// New returns a Logger writing to w the messages whose level is at or
// below the given level (Normal < Verbose < Debug).
func New(w io.Writer, level Level) Logger {
	return &stdLogger{level: level, log: log.New(w, "", 0)}
}

func (l *stdLogger) Normal(v ...interface{})                 { l.log.Print(v...) }
func (l *stdLogger) Normalf(format string, v ...interface{}) { l.log.Printf(format, v...) }

func (l *stdLogger) Verbose(v ...interface{}) {
	if l.level >= Verbose {
		l.log.Print(v...)
	}
}

func (l *stdLogger) Verbosef(format string, v ...interface{}) {
	if l.level >= Verbose {
		l.log.Printf(format, v...)
	}
}

func (l *stdLogger) Debug(v ...interface{}) {
	if l.level >= Debug {
		l.log.Print(v...)
	}
}

func (l *stdLogger) Debugf(format string, v ...interface{}) {
	if l.level >= Debug {
		l.log.Printf(format, v...)
	}
}

// quietLogger discards everything; used when a caller passes no logger.
type quietLogger struct{}

func (quietLogger) Normal(v ...interface{})                  {}
func (quietLogger) Normalf(format string, v ...interface{})  {}
func (quietLogger) Verbose(v ...interface{})                 {}
func (quietLogger) Verbosef(format string, v ...interface{}) {}
func (quietLogger) Debug(v ...interface{})                   {}
func (quietLogger) Debugf(format string, v ...interface{})   {}

// Quiet is a Logger that discards everything, for callers that don't want
// to wire one up.
var Quiet Logger = quietLogger{}
