package logger

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/streamlogger/core"
	"github.com/philipp01105/streamlogger/formatter"
	"github.com/philipp01105/streamlogger/sink"
)

// DefaultFilename is the fixed name of the log file inside the target directory
const DefaultFilename = "StreamLogger.log"

var (
	// ErrSinkUnavailable is reported when the log file cannot be opened
	ErrSinkUnavailable = errors.New("logger: sink unavailable")
	// ErrEntryEnded is returned by writes to an Entry after End
	ErrEntryEnded = errors.New("logger: entry already ended")
)

// processLock serializes every Logger built without WithLock
var processLock sync.Mutex

// ProcessLock returns the mutex shared by all Loggers by default
func ProcessLock() *sync.Mutex {
	return &processLock
}

// Logger writes severity-tagged entries to a lazily opened file
type Logger struct {
	mu        *sync.Mutex
	path      string
	enabled   atomic.Bool
	sink      sink.Sink // nil until resolved for the current enablement
	sinkErr   error
	fileCfg   sink.FileConfig
	formatter formatter.Formatter
	clock     core.Clock
	stats     *sink.Stats
	diag      *zap.Logger
	pending   []diagnostic // reported once l.mu is released
}

// diagnostic is a message for the diagnostics logger queued under the lock
type diagnostic struct {
	level  zapcore.Level
	msg    string
	fields []zap.Field
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	directory string
	filename  string
	formatter formatter.Formatter
	clock     core.Clock
	mu        *sync.Mutex
	fileCfg   sink.FileConfig
	enabled   bool
	diag      *zap.Logger
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		filename: DefaultFilename,
		enabled:  true, // By default logger is enabled
	}
}

// WithDirectory sets the directory holding the log file (default: working directory)
func (b *Builder) WithDirectory(dir string) *Builder {
	b.directory = dir
	return b
}

// WithFilename overrides the fixed log filename
func (b *Builder) WithFilename(name string) *Builder {
	if name != "" {
		b.filename = name
	}
	return b
}

// WithFormatter sets the prefix and banner formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithClock sets the clock used for timestamps
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithLock replaces the process-wide lock with mu
func (b *Builder) WithLock(mu *sync.Mutex) *Builder {
	b.mu = mu
	return b
}

// WithCreateDirectory creates the directory on first open when missing
func (b *Builder) WithCreateDirectory(create bool) *Builder {
	b.fileCfg.CreateDir = create
	return b
}

// WithEnabled sets the initial enablement
func (b *Builder) WithEnabled(enabled bool) *Builder {
	b.enabled = enabled
	return b
}

// WithDiagnostics sets the logger that receives the Logger's own failures
func (b *Builder) WithDiagnostics(z *zap.Logger) *Builder {
	b.diag = z
	return b
}

// Build creates the Logger instance. No file is opened.
func (b *Builder) Build() *Logger {
	l := &Logger{
		mu:        b.mu,
		path:      filepath.Join(b.directory, b.filename),
		fileCfg:   b.fileCfg,
		formatter: b.formatter,
		clock:     b.clock,
		stats:     sink.NewStats(),
		diag:      b.diag,
	}
	if l.mu == nil {
		l.mu = &processLock
	}
	if l.formatter == nil {
		l.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if l.clock == nil {
		l.clock = core.SystemClock
	}
	if l.diag == nil {
		l.diag = zap.NewNop()
	}
	l.enabled.Store(b.enabled)
	return l
}

// New creates an enabled Logger writing to directory/StreamLogger.log.
// An empty directory means the current working directory.
func New(directory string) *Logger {
	return NewBuilder().WithDirectory(directory).Build()
}

// Info starts an info entry
func (l *Logger) Info() *Entry {
	return l.begin(core.InfoLevel)
}

// Warn starts a warning entry
func (l *Logger) Warn() *Entry {
	return l.begin(core.WarnLevel)
}

// Error starts an error entry
func (l *Logger) Error() *Entry {
	return l.begin(core.ErrorLevel)
}

// Begin starts an entry at the given level
func (l *Logger) Begin(level core.Level) *Entry {
	return l.begin(level)
}

// begin takes the lock, resolves the sink and writes the prefix.
// The lock is released by Entry.End.
func (l *Logger) begin(level core.Level) *Entry {
	l.mu.Lock()

	e := &Entry{logger: l, level: level}
	s, err := l.resolve()
	if err != nil {
		e.err = err
		return e
	}
	e.sink = s

	if s.Discards() {
		l.stats.IncrementDiscarded(level)
	} else {
		l.stats.IncrementWritten(level)
	}

	if err := formatter.WritePrefix(s, l.formatter, l.clock(), level); err != nil {
		e.err = fmt.Errorf("write prefix: %w", err)
	}
	return e
}

// resolve returns the current sink, creating it if absent.
// NOTE: caller must hold l.mu
func (l *Logger) resolve() (sink.Sink, error) {
	if l.sink != nil {
		return l.sink, nil
	}
	if l.sinkErr != nil {
		return nil, l.sinkErr
	}

	if !l.enabled.Load() {
		l.sink = sink.NewNullSink()
		return l.sink, nil
	}

	fs, err := sink.OpenFile(l.path, l.fileCfg)
	if err != nil {
		l.stats.IncrementOpenFailures()
		l.sinkErr = fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
		l.report(zapcore.ErrorLevel, "failed to open log file", zap.String("path", l.path), zap.Error(err))
		return nil, l.sinkErr
	}

	if err := formatter.WriteBanner(fs, l.formatter, l.clock()); err != nil {
		l.stats.IncrementOpenFailures()
		l.sinkErr = fmt.Errorf("%w: write banner: %w", ErrSinkUnavailable, err)
		if closeErr := fs.Close(); closeErr != nil {
			l.report(zapcore.WarnLevel, "failed to close log file", zap.String("path", l.path), zap.Error(closeErr))
		}
		return nil, l.sinkErr
	}

	l.report(zapcore.DebugLevel, "opened log file", zap.String("path", l.path), zap.Int64("size", fs.Size()))
	l.sink = fs
	return l.sink, nil
}

// teardown flushes and closes the current sink and marks it unresolved.
// NOTE: caller must hold l.mu
func (l *Logger) teardown() error {
	var err error
	if l.sink != nil {
		err = l.sink.Close()
	}
	l.sink = nil
	l.sinkErr = nil
	return err
}

// SetEnabled switches between the file and the discarding sink.
// Setting the current value again is a no-op.
func (l *Logger) SetEnabled(enabled bool) {
	l.mu.Lock()
	if l.enabled.Load() == enabled {
		l.mu.Unlock()
		return
	}
	l.enabled.Store(enabled)

	if err := l.teardown(); err != nil {
		l.report(zapcore.WarnLevel, "failed to flush log file on toggle",
			zap.String("path", l.path),
			zap.Bool("enabled", enabled),
			zap.Error(err))
	}
	l.unlock()
}

// report queues a diagnostic. The diagnostics logger may itself write
// through a Logger sharing l.mu, so nothing is emitted until unlock.
// NOTE: caller must hold l.mu
func (l *Logger) report(level zapcore.Level, msg string, fields ...zap.Field) {
	l.pending = append(l.pending, diagnostic{level: level, msg: msg, fields: fields})
}

// unlock releases l.mu and then emits the diagnostics queued while it was held
func (l *Logger) unlock() {
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, d := range pending {
		l.diag.Log(d.level, d.msg, d.fields...)
	}
}

// GetEnabled reports whether entries are persisted
func (l *Logger) GetEnabled() bool {
	return l.enabled.Load()
}

// Filename returns the path of the log file
func (l *Logger) Filename() string {
	return l.path
}

// Flush pushes buffered entries to the file
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sink == nil {
		return nil
	}
	return l.sink.Flush()
}

// Close flushes, syncs and closes the log file if one is open.
// The Logger stays usable; the next entry reopens the file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.teardown()
}

// Stats returns a snapshot of the entry counters
func (l *Logger) Stats() sink.Snapshot {
	return l.stats.GetSnapshot()
}

// Log writes msg as a complete, newline-terminated entry
func (l *Logger) Log(level core.Level, msg string) error {
	e := l.begin(level)
	e.WriteString(msg)
	e.WriteString("\n")
	return e.End()
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.Log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	return l.Log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(core.ErrorLevel, fmt.Sprintf(format, args...))
}
