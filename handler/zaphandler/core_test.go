package zaphandler

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/streamlogger/core"
	"github.com/philipp01105/streamlogger/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l := logger.NewBuilder().
		WithDirectory(t.TempDir()).
		WithClock(core.FixedClock(time.Date(2026, 2, 18, 9, 30, 0, 0, time.Local))).
		Build()
	t.Cleanup(func() { l.Close() })
	return l
}

func contents(t *testing.T, l *logger.Logger) string {
	t.Helper()
	data, err := os.ReadFile(l.Filename())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func TestCore_Levels(t *testing.T) {
	l := newTestLogger(t)
	z := zap.New(NewCore(l, zapcore.DebugLevel))

	z.Debug("debug message")
	z.Info("info message")
	z.Warn("warn message")
	z.Error("error message")
	if err := z.Sync(); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	output := contents(t, l)
	for _, want := range []string{
		"[09:30:00] [INFO ] : debug message\n",
		"[09:30:00] [INFO ] : info message\n",
		"[09:30:00] [WARN ] : warn message\n",
		"[09:30:00] [ERROR] : error message\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output, got: %s", want, output)
		}
	}
}

func TestCore_LevelEnabler(t *testing.T) {
	l := newTestLogger(t)
	z := zap.New(NewCore(l, zapcore.WarnLevel))

	z.Info("filtered")
	z.Warn("kept")
	z.Sync()

	output := contents(t, l)
	if strings.Contains(output, "filtered") {
		t.Errorf("Info entry should have been filtered, got: %s", output)
	}
	if !strings.Contains(output, "kept") {
		t.Errorf("Expected warn entry, got: %s", output)
	}
}

func TestCore_DisabledLogger(t *testing.T) {
	l := newTestLogger(t)
	c := NewCore(l, zapcore.DebugLevel)

	l.SetEnabled(false)
	if c.Enabled(zapcore.ErrorLevel) {
		t.Error("Core should be disabled while the logger is disabled")
	}

	zap.New(c).Error("never written")
	l.Flush()
	if _, err := os.Stat(l.Filename()); !os.IsNotExist(err) {
		t.Errorf("Expected no log file, stat error = %v", err)
	}
}

func TestCore_Fields(t *testing.T) {
	l := newTestLogger(t)
	z := zap.New(NewCore(l, zapcore.InfoLevel)).
		Named("api").
		With(zap.String("service", "users"))

	z.Warn("request failed",
		zap.Int("status", 502),
		zap.Error(errors.New("upstream timeout")),
	)
	z.Sync()

	want := "[WARN ] : api: request failed error=upstream timeout service=users status=502\n"
	if output := contents(t, l); !strings.Contains(output, want) {
		t.Errorf("Expected %q in output, got: %s", want, output)
	}
}

func TestCore_CallerAndStack(t *testing.T) {
	l := newTestLogger(t)
	z := zap.New(NewCore(l, zapcore.InfoLevel),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	z.Info("with caller")
	z.Error("with stack")
	z.Sync()

	output := contents(t, l)
	if !strings.Contains(output, "[INFO ] : with caller caller=zaphandler/core_test.go:") {
		t.Errorf("Expected caller after the message, got: %s", output)
	}
	_, stack, found := strings.Cut(output, "[ERROR] : with stack caller=zaphandler/core_test.go:")
	if !found {
		t.Fatalf("Expected error entry with caller, got: %s", output)
	}
	if !strings.Contains(stack, "TestCore_CallerAndStack") {
		t.Errorf("Expected stack trace after the error entry, got: %s", stack)
	}
}

// A Logger whose diagnostics are routed into another Logger through this
// core must not deadlock on the shared process lock.
func TestCore_AsDiagnosticsOfAnotherLogger(t *testing.T) {
	target := newTestLogger(t)
	l := logger.NewBuilder().
		WithDirectory(t.TempDir()).
		WithDiagnostics(zap.New(NewCore(target, zapcore.DebugLevel))).
		Build()
	t.Cleanup(func() { l.Close() })

	done := make(chan error, 1)
	go func() {
		done <- l.Log(core.InfoLevel, "hello")
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Log() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Log() did not return: diagnostics emitted under the logging lock")
	}

	target.Flush()
	if output := contents(t, target); !strings.Contains(output, "[INFO ] : opened log file path="+l.Filename()) {
		t.Errorf("Expected open diagnostic in target log, got: %s", output)
	}
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.DebugLevel, core.InfoLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.WarnLevel, core.WarnLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.DPanicLevel, core.ErrorLevel},
		{zapcore.FatalLevel, core.ErrorLevel},
	}

	for _, tt := range tests {
		if got := zapLevelToCore(tt.in); got != tt.want {
			t.Errorf("zapLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
