// Package formatter defines how entry prefixes and banners are rendered.
//
// A Formatter writes two things: the per-entry prefix (a bracketed
// 24-hour timestamp followed by the fixed-width severity tag) and the
// banner block emitted once each time a file sink is opened. The
// message body is never touched by the formatter; callers compose it
// themselves after the prefix.
//
// TextFormatter is the only built-in implementation. It relies on
// time.AppendFormat to render timestamps straight into the buffer's
// spare capacity, and WritePrefix/WriteBanner use a pooled
// bytes.Buffer so the sink sees one Write per prefix.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single oversized banner from permanently inflating memory usage.
package formatter
