package zaphandler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/streamlogger/core"
	"github.com/philipp01105/streamlogger/logger"
)

// Core is a zapcore.Core backed by a Logger
type Core struct {
	zapcore.LevelEnabler
	logger *logger.Logger
	fields []zapcore.Field
}

// NewCore creates a new zapcore.Core writing through l
func NewCore(l *logger.Logger, enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		logger:       l,
	}
}

// Enabled reports whether lvl passes the enabler and the Logger is enabled
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.LevelEnabler.Enabled(lvl) && c.logger.GetEnabled()
}

// With returns a new Core carrying additional fields
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	newFields = append(newFields, fields...)
	return &Core{
		LevelEnabler: c.LevelEnabler,
		logger:       c.logger,
		fields:       newFields,
	}
}

// Check adds the core to ce if the entry is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry message, fields and caller as one newline-terminated
// entry. A stack trace follows on its own lines.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var sb strings.Builder
	if ent.LoggerName != "" {
		sb.WriteString(ent.LoggerName)
		sb.WriteString(": ")
	}
	sb.WriteString(ent.Message)
	appendFields(&sb, enc.Fields)
	if ent.Caller.Defined {
		sb.WriteString(" caller=")
		sb.WriteString(ent.Caller.TrimmedPath())
	}
	if ent.Stack != "" {
		sb.WriteByte('\n')
		sb.WriteString(ent.Stack)
	}
	sb.WriteByte('\n')

	e := c.logger.Begin(zapLevelToCore(ent.Level))
	e.WriteString(sb.String())
	return e.End()
}

// Sync flushes the Logger
func (c *Core) Sync() error {
	return c.logger.Flush()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	default:
		return core.InfoLevel
	}
}

// appendFields writes " key=value" for every field, sorted by key
func appendFields(sb *strings.Builder, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		fmt.Fprint(sb, fields[k])
	}
}

// Ensure Core implements the zapcore.Core interface.
var _ zapcore.Core = (*Core)(nil)
