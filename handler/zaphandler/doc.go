// Package zaphandler provides a zapcore.Core that writes zap entries
// through a StreamLogger Logger, so a *zap.Logger can log into the
// StreamLogger file:
//
//	z := zap.New(zaphandler.NewCore(log, zapcore.InfoLevel))
//	z.Warn("cache miss", zap.String("key", k))
//
// Debug entries map to Info, DPanic and above map to Error. Fields are
// rendered as sorted key=value text after the message, followed by
// caller=file:line when zap.AddCaller is set. A stack trace captured by
// zap.AddStacktrace is written on the lines after the entry.
package zaphandler
