// Package sink provides the write destinations behind a Logger.
//
// A Sink is an io.Writer that can also be flushed and closed. Two
// variants exist and a Logger picks one each time it resolves its
// sink:
//
//   - NullSink discards every byte. It is installed while logging is
//     disabled so callers always hold a valid writer.
//   - FileSink appends to a single file through a 4 KiB bufio.Writer.
//     Close flushes, fsyncs and closes the file.
//
// Sinks are not safe for concurrent use on their own; the Logger
// serializes access with its lock.
//
// Stats counts entries written and discarded per level with atomic
// counters and can be read at any time without the Logger's lock.
package sink
