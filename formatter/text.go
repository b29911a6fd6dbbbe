package formatter

import (
	"bytes"
	"strings"
	"time"

	"github.com/philipp01105/streamlogger/core"
)

// TextFormatter renders prefixes and banners as plain text
type TextFormatter struct {
	Config
	divider string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	if cfg.HeaderFormat == "" {
		cfg.HeaderFormat = DefaultHeaderFormat
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.DividerWidth <= 0 {
		cfg.DividerWidth = DefaultDividerWidth
	}
	return &TextFormatter{
		Config:  cfg,
		divider: strings.Repeat("-", cfg.DividerWidth),
	}
}

// FormatPrefix writes "[HH:MM:SS] " followed by the level tag
func (f *TextFormatter) FormatPrefix(buf *bytes.Buffer, t time.Time, level core.Level) {
	buf.WriteByte('[')
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("] ")
	buf.WriteString(level.Tag())
}

// FormatBanner writes a blank line, the divider, the dated header,
// the divider again and a blank line.
func (f *TextFormatter) FormatBanner(buf *bytes.Buffer, t time.Time) {
	buf.WriteByte('\n')
	buf.WriteString(f.divider)
	buf.WriteByte('\n')
	buf.WriteString(f.Title)
	buf.WriteString(" : Dated ")
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), f.HeaderFormat))
	buf.WriteByte('\n')
	buf.WriteString(f.divider)
	buf.WriteString("\n\n")
}

// Divider returns the divider line without its terminator
func (f *TextFormatter) Divider() string {
	return f.divider
}
