package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the default logger, writing to StreamLogger.log in
// the working directory. It is created on first use.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("")
	}
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Info starts an info entry on the default logger
func Info() *Entry {
	return Default().Info()
}

// Warn starts a warning entry on the default logger
func Warn() *Entry {
	return Default().Warn()
}

// Error starts an error entry on the default logger
func Error() *Entry {
	return Default().Error()
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) error {
	return Default().Infof(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) error {
	return Default().Warnf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}
