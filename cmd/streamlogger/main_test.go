package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/philipp01105/streamlogger/internal/config"
	"github.com/philipp01105/streamlogger/logger"
)

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps parsed values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(rootCmd)
	chdir(t, t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v, output: %s", args, err, out.String())
	}
	return out.String()
}

func TestWriteCommand(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "write", "--level", "warn", "disk", "almost", "full")

	data, err := os.ReadFile(filepath.Join(dir, logger.DefaultFilename))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "[WARN ] : disk almost full\n") {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestWriteCommand_InvalidLevel(t *testing.T) {
	resetFlags(rootCmd)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--dir", t.TempDir(), "write", "--level", "debug", "x"})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Expected error for unknown level")
	}
}

func TestWriteCommand_Disabled(t *testing.T) {
	dir := t.TempDir()
	execute(t, "--dir", dir, "--disabled", "write", "hidden")

	if _, err := os.Stat(filepath.Join(dir, logger.DefaultFilename)); !os.IsNotExist(err) {
		t.Errorf("Expected no log file, stat error = %v", err)
	}
}

func TestDemoCommand(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "--dir", dir, "demo", "--workers", "3", "--entries", "5")

	if !strings.Contains(out, "15 written, 0 discarded") {
		t.Errorf("Unexpected demo output: %s", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, logger.DefaultFilename))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if n := strings.Count(string(data), " entry "); n != 15 {
		t.Errorf("Expected 15 entries in file, got %d", n)
	}
}

func TestPathCommand(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "--dir", dir, "--filename", "custom.log", "path")

	if strings.TrimSpace(out) != filepath.Join(dir, "custom.log") {
		t.Errorf("path printed %q", out)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "streamlogger.yaml")
	content := "directory: " + dir + "\nfilename: from-config.log\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	execute(t, "--config", cfgPath, "write", "configured")

	data, err := os.ReadFile(filepath.Join(dir, "from-config.log"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasSuffix(string(data), "[INFO ] : configured\n") {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, Version) {
		t.Errorf("Expected version %q in output, got: %s", Version, out)
	}
}

// readLog returns the log file content, or "" while it does not exist
func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return string(data)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("Timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// startWatch runs runWatch for the settings at cfgPath until the returned
// stop function is called.
func startWatch(t *testing.T, cfgPath string) (app, func()) {
	t.Helper()
	loader := config.NewLoader(cfgPath)
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	a := app{
		loader: loader,
		cfg:    cfg,
		diag:   zap.NewNop(),
		log:    newLogger(cfg, zap.NewNop()),
	}
	t.Cleanup(func() { a.log.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, a, 10*time.Millisecond)
	}()

	return a, func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("runWatch() error = %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("runWatch() did not return after cancel")
		}
		if err := a.log.Flush(); err != nil {
			t.Fatalf("Flush() error = %v", err)
		}
	}
}

func TestWatch_FollowsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "streamlogger.yaml")
	if err := os.WriteFile(cfgPath, []byte("directory: "+dir+"\nenabled: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, stop := startWatch(t, cfgPath)
	path := a.log.Filename()
	waitFor(t, "first heartbeat", func() bool {
		return strings.Contains(readLog(t, path), "[INFO ] : heartbeat 1\n")
	})

	if err := os.WriteFile(cfgPath, []byte("directory: "+dir+"\nenabled: false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "logging to be disabled", func() bool { return !a.log.GetEnabled() })

	// Flush waits for the toggle to finish its teardown
	a.log.Flush()
	disabled := readLog(t, path)
	if !strings.Contains(disabled, "[INFO ] : logging disabled by "+cfgPath+"\n") {
		t.Errorf("Expected disable entry, got: %s", disabled)
	}

	time.Sleep(100 * time.Millisecond)
	if got := readLog(t, path); got != disabled {
		t.Errorf("Expected no heartbeats while disabled, new content: %q", strings.TrimPrefix(got, disabled))
	}

	stop()
	if got := readLog(t, path); strings.Contains(got, "watch stopped") {
		t.Errorf("Expected stop entry to be discarded while disabled, got: %s", got)
	}
}

func TestWatch_WithoutConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	a, stop := startWatch(t, "")
	path := a.log.Filename()
	waitFor(t, "first heartbeat", func() bool {
		return strings.Contains(readLog(t, path), "[INFO ] : heartbeat 1\n")
	})
	stop()

	if got := readLog(t, path); !strings.Contains(got, "[INFO ] : watch stopped after ") {
		t.Errorf("Expected stop entry while enabled, got: %s", got)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
