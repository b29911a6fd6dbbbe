package sloghandler

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/philipp01105/streamlogger/core"
	"github.com/philipp01105/streamlogger/logger"
)

// Handler is an adapter that implements slog.Handler using a Logger.
type Handler struct {
	logger *logger.Logger
	level  slog.Leveler
	attrs  []slog.Attr // already prefixed with their group
	group  string
}

// New creates a new slog.Handler writing through l.
// A nil level means slog.LevelInfo.
func New(l *logger.Logger, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		logger: l,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.logger.GetEnabled()
}

// Handle writes the record as one newline-terminated entry.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	e := h.logger.Begin(slogLevelToCore(record.Level))
	buf := make([]byte, 0, 128)
	buf = append(buf, record.Message...)

	for _, a := range h.attrs {
		buf = appendAttr(buf, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})
	buf = append(buf, '\n')

	e.Write(buf)
	return e.End()
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &Handler{
		logger: h.logger,
		level:  h.level,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		logger: h.logger,
		level:  h.level,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	default:
		return core.InfoLevel
	}
}

// appendAttr appends " key=value", prepending the group prefix if present.
// Group values are flattened into one pair per member.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, key, ga)
		}
		return buf
	case slog.KindString:
		buf = append(buf, ' ')
		buf = append(buf, key...)
		buf = append(buf, '=')
		return append(buf, a.Value.String()...)
	case slog.KindInt64:
		buf = append(buf, ' ')
		buf = append(buf, key...)
		buf = append(buf, '=')
		return strconv.AppendInt(buf, a.Value.Int64(), 10)
	case slog.KindTime:
		buf = append(buf, ' ')
		buf = append(buf, key...)
		buf = append(buf, '=')
		return a.Value.Time().AppendFormat(buf, time.RFC3339)
	default:
		buf = append(buf, ' ')
		buf = append(buf, key...)
		buf = append(buf, '=')
		return append(buf, a.Value.String()...)
	}
}

// Ensure Handler implements the slog.Handler interface.
var _ slog.Handler = (*Handler)(nil)
