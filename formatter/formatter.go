package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/streamlogger/core"
)

// Formatter defines the interface for prefix and banner formatters
type Formatter interface {
	// FormatPrefix writes the timestamp and severity tag of an entry
	FormatPrefix(buf *bytes.Buffer, t time.Time, level core.Level)

	// FormatBanner writes the block emitted when a file sink is opened
	FormatBanner(buf *bytes.Buffer, t time.Time)
}

// Config holds formatter configuration
type Config struct {
	// TimestampFormat is the layout of the entry timestamp, rendered inside brackets (default: "15:04:05")
	TimestampFormat string
	// HeaderFormat is the layout of the date in the banner header (default: "2006-01-02 15:04:05")
	HeaderFormat string
	// Title precedes the banner date (default: "StreamLogger Log")
	Title string
	// DividerWidth is the number of dashes in the banner divider (default: 57)
	DividerWidth int
}

const (
	// DefaultTimestampFormat renders hour:minute:second in 24-hour form
	DefaultTimestampFormat = "15:04:05"
	// DefaultHeaderFormat renders the date and time of the banner
	DefaultHeaderFormat = "2006-01-02 15:04:05"
	// DefaultTitle is the banner title
	DefaultTitle = "StreamLogger Log"
	// DefaultDividerWidth is the banner divider width
	DefaultDividerWidth = 57
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// WritePrefix renders the prefix of an entry and writes it to w in a single call
func WritePrefix(w io.Writer, f Formatter, t time.Time, level core.Level) error {
	buf := getBuffer()
	f.FormatPrefix(buf, t, level)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// WriteBanner renders the banner block and writes it to w in a single call
func WriteBanner(w io.Writer, f Formatter, t time.Time) error {
	buf := getBuffer()
	f.FormatBanner(buf, t)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
