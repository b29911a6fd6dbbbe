package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/streamlogger/core"
	"github.com/philipp01105/streamlogger/internal/config"
)

// writeCmd writes a single entry
func writeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write [--level info|warn|error] <message...>",
		Short: "Write one entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("level")
			level, err := core.ParseLevel(name)
			if err != nil {
				return err
			}
			return current.log.Log(level, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringP("level", "l", "info", "Severity: info, warn or error")
	return cmd
}

// demoCmd exercises concurrent writers and enablement toggles
func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write entries from concurrent workers while toggling enablement",
		RunE: func(cmd *cobra.Command, args []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			entries, _ := cmd.Flags().GetInt("entries")
			toggles, _ := cmd.Flags().GetInt("toggles")
			return runDemo(cmd, workers, entries, toggles)
		},
	}
	cmd.Flags().IntP("workers", "w", 4, "Number of concurrent writers")
	cmd.Flags().IntP("entries", "n", 25, "Entries per writer")
	cmd.Flags().Int("toggles", 0, "Number of enable/disable flips during the run")
	return cmd
}

func runDemo(cmd *cobra.Command, workers, entries, toggles int) error {
	l := current.log
	levels := core.Levels()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < entries; i++ {
				e := l.Begin(levels[(id+i)%len(levels)])
				e.Printf("worker %d entry %d", id, i)
				e.Println()
				if err := e.End(); err != nil {
					current.diag.Warn("entry failed", zap.Int("worker", id), zap.Error(err))
					return
				}
			}
		}(w)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		initial := l.GetEnabled()
		for i := 0; i < toggles; i++ {
			l.SetEnabled(!l.GetEnabled())
		}
		l.SetEnabled(initial)
	}()
	wg.Wait()

	if err := l.Flush(); err != nil {
		return err
	}

	snap := l.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d written, %d discarded\n",
		l.Filename(), snap.TotalWritten(), snap.TotalDiscarded())
	return nil
}

// watchCmd writes heartbeats until interrupted, following config changes
func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Write heartbeat entries; enablement follows the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, _ := cmd.Flags().GetDuration("interval")
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, current, interval)
		},
	}
	cmd.Flags().DurationP("interval", "i", time.Second, "Heartbeat interval")
	return cmd
}

func runWatch(ctx context.Context, a app, interval time.Duration) error {
	l := a.log
	logf := func(format string, args ...interface{}) {
		if err := l.Infof(format, args...); err != nil {
			a.diag.Warn("entry failed", zap.String("path", l.Filename()), zap.Error(err))
		}
	}

	if file := a.loader.ConfigFile(); file != "" {
		err := a.loader.Watch(func(cfg *config.Config, err error) {
			if err != nil {
				a.diag.Warn("config reload failed", zap.Error(err))
				return
			}
			switch {
			case cfg.Enabled && !l.GetEnabled():
				l.SetEnabled(true)
				logf("logging enabled by %s", file)
			case !cfg.Enabled && l.GetEnabled():
				logf("logging disabled by %s", file)
				l.SetEnabled(false)
			}
		})
		if err != nil {
			return err
		}
	} else {
		a.diag.Info("no config file, enablement is fixed for this run")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			logf("watch stopped after %d heartbeats", n-1)
			return nil
		case <-ticker.C:
			logf("heartbeat %d", n)
			if err := l.Flush(); err != nil {
				return err
			}
		}
	}
}

// pathCmd prints the resolved log file path
func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the log file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := filepath.Abs(current.log.Filename())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

// versionCmd prints build information
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
			return nil
		},
	}
}
