package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log entry
type Level int8

const (
	// InfoLevel for general informational messages
	InfoLevel Level = iota
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// pre-formatted tags, padded to the width of ERROR
var levelTags = [...]string{
	InfoLevel:  "[INFO ] : ",
	WarnLevel:  "[WARN ] : ",
	ErrorLevel: "[ERROR] : ",
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the fixed-width tag written after the timestamp.
// Unknown levels are rendered as errors.
func (l Level) Tag() string {
	if l.Valid() {
		return levelTags[l]
	}
	return levelTags[ErrorLevel]
}

// Valid reports whether l is one of the three known severities
func (l Level) Valid() bool {
	return l >= InfoLevel && l <= ErrorLevel
}

// Levels returns all severities in ascending order
func Levels() []Level {
	return []Level{InfoLevel, WarnLevel, ErrorLevel}
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO", "":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown level %q", s)
	}
}
