package sink

import "io"

// Sink is the active write destination of a Logger
type Sink interface {
	io.Writer
	io.StringWriter

	// Flush pushes buffered bytes to the underlying destination
	Flush() error

	// Close flushes and releases the underlying destination
	Close() error

	// Discards reports whether written bytes are thrown away
	Discards() bool
}

// NullSink is a Sink that discards all writes
type NullSink struct{}

// NewNullSink creates a new discarding sink
func NewNullSink() NullSink {
	return NullSink{}
}

// Write reports len(p) bytes written without doing anything
func (NullSink) Write(p []byte) (int, error) {
	return len(p), nil
}

// WriteString reports len(s) bytes written without doing anything
func (NullSink) WriteString(s string) (int, error) {
	return len(s), nil
}

// Flush does nothing
func (NullSink) Flush() error {
	return nil
}

// Close does nothing
func (NullSink) Close() error {
	return nil
}

// Discards always returns true
func (NullSink) Discards() bool {
	return true
}

// Ensure both sinks implement the Sink interface.
var (
	_ Sink = NullSink{}
	_ Sink = (*FileSink)(nil)
)
