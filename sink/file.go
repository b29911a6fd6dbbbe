package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// ErrClosed is returned by writes to a FileSink after Close
var ErrClosed = errors.New("sink: file sink is closed")

// sizeTrackingWriter wraps an io.Writer and tracks total bytes written
type sizeTrackingWriter struct {
	w       io.Writer
	written int64
}

func (s *sizeTrackingWriter) Write(p []byte) (n int, err error) {
	n, err = s.w.Write(p)
	s.written += int64(n)
	return
}

// FileConfig holds configuration for a file sink
type FileConfig struct {
	// CreateDir creates missing parent directories before opening (default: false)
	CreateDir bool
	// BufferSize is the size of the write buffer (default: 4096)
	BufferSize int
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// FileSink appends to a single file through a buffered writer
type FileSink struct {
	path       string
	file       *os.File
	bufWriter  *bufio.Writer
	sizeWriter *sizeTrackingWriter
	startSize  int64
}

// OpenFile opens path for appending, creating it if absent
func OpenFile(path string, cfg FileConfig) (*FileSink, error) {
	if path == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	if cfg.CreateDir {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, cfg.Perm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, multierr.Append(err, file.Close())
	}

	sw := &sizeTrackingWriter{w: file}
	return &FileSink{
		path:       path,
		file:       file,
		sizeWriter: sw,
		bufWriter:  bufio.NewWriterSize(sw, cfg.BufferSize),
		startSize:  info.Size(),
	}, nil
}

// Write appends p to the buffer
func (s *FileSink) Write(p []byte) (int, error) {
	if s.file == nil {
		return 0, ErrClosed
	}
	return s.bufWriter.Write(p)
}

// WriteString appends str to the buffer
func (s *FileSink) WriteString(str string) (int, error) {
	if s.file == nil {
		return 0, ErrClosed
	}
	return s.bufWriter.WriteString(str)
}

// Flush writes buffered bytes to the file
func (s *FileSink) Flush() error {
	if s.file == nil {
		return nil
	}
	return s.bufWriter.Flush()
}

// Close flushes, syncs and closes the underlying file.
// Calling Close more than once is a no-op.
func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}

	err := multierr.Combine(
		s.bufWriter.Flush(),
		s.file.Sync(),
		s.file.Close(),
	)
	s.file = nil
	return err
}

// Discards always returns false
func (s *FileSink) Discards() bool {
	return false
}

// Path returns the path of the underlying file
func (s *FileSink) Path() string {
	return s.path
}

// Size returns the file size including bytes still buffered
func (s *FileSink) Size() int64 {
	return s.startSize + s.sizeWriter.written + int64(s.bufWriter.Buffered())
}
