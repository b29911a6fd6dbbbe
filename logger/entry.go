package logger

import (
	"fmt"

	"github.com/philipp01105/streamlogger/core"
	"github.com/philipp01105/streamlogger/sink"
)

// Entry is an entry in progress. It holds the logging lock from the
// moment the prefix is written until End is called. An Entry must be
// used by a single goroutine.
type Entry struct {
	logger *Logger
	level  core.Level
	sink   sink.Sink
	err    error
	ended  bool
}

// Write appends p to the entry body
func (e *Entry) Write(p []byte) (int, error) {
	if e.ended {
		return 0, ErrEntryEnded
	}
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.sink.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteString appends s to the entry body
func (e *Entry) WriteString(s string) (int, error) {
	if e.ended {
		return 0, ErrEntryEnded
	}
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.sink.WriteString(s)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Print appends the operands formatted as by fmt.Print
func (e *Entry) Print(args ...interface{}) *Entry {
	fmt.Fprint(e, args...)
	return e
}

// Printf appends the operands formatted as by fmt.Printf
func (e *Entry) Printf(format string, args ...interface{}) *Entry {
	fmt.Fprintf(e, format, args...)
	return e
}

// Println appends the operands formatted as by fmt.Println, including the newline
func (e *Entry) Println(args ...interface{}) *Entry {
	fmt.Fprintln(e, args...)
	return e
}

// Level returns the severity of the entry
func (e *Entry) Level() core.Level {
	return e.level
}

// Err returns the first error the entry ran into
func (e *Entry) Err() error {
	return e.err
}

// End releases the logging lock. It does not append a terminator and
// does not flush. Calling End more than once is a no-op.
func (e *Entry) End() error {
	if e.ended {
		return e.err
	}
	e.ended = true
	e.sink = nil
	e.logger.unlock()
	return e.err
}
