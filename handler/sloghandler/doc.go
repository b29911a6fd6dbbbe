// Package sloghandler adapts a StreamLogger Logger to log/slog.Handler,
// so code written against the standard library writes into the
// StreamLogger file.
//
// Records map onto the three fixed severities (Debug and Info become
// Info). Attributes are appended to the message as plain key=value
// text; groups are flattened with a "." separator.
package sloghandler
