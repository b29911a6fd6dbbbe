package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/streamlogger/internal/config"
	"github.com/philipp01105/streamlogger/logger"
)

var (
	// Version is set during build
	Version = "dev"
	// GitCommit is set during build
	GitCommit = "none"
	// BuildDate is set during build
	BuildDate = "unknown"
)

// app carries what PersistentPreRunE resolved for the subcommands
type app struct {
	loader *config.Loader
	cfg    *config.Config
	log    *logger.Logger
	diag   *zap.Logger
}

var current app

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "streamlogger",
	Short: "Append timestamped entries to a StreamLogger file",
	Long: `streamlogger writes timestamped, severity-tagged entries to
<directory>/StreamLogger.log, opening the file only when the first
entry is written.

Examples:
  streamlogger write --level warn "disk almost full"
  streamlogger --dir /var/log/app demo --workers 4
  streamlogger --config streamlogger.yaml watch`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (default: ./streamlogger.{yaml,toml,json})")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory holding the log file (default: working directory)")
	rootCmd.PersistentFlags().String("filename", "", "Override the log filename")
	rootCmd.PersistentFlags().Bool("disabled", false, "Start with logging disabled")
	rootCmd.PersistentFlags().Bool("mkdir", false, "Create the directory if it does not exist")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print diagnostics to stderr")

	rootCmd.AddCommand(writeCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(pathCmd())
	rootCmd.AddCommand(versionCmd())
}

// setup loads the configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")

	loader := config.NewLoader(configPath)
	v := loader.Viper()
	for key, flag := range map[string]string{
		"directory":        "dir",
		"filename":         "filename",
		"create_directory": "mkdir",
		"verbose":          "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if disabled, _ := flags.GetBool("disabled"); disabled {
		cfg.Enabled = false
	}

	diag, err := newDiagnostics(cfg.Verbose)
	if err != nil {
		return err
	}

	current = app{
		loader: loader,
		cfg:    cfg,
		diag:   diag,
		log:    newLogger(cfg, diag),
	}
	diag.Debug("configuration loaded",
		zap.String("config_file", loader.ConfigFile()),
		zap.String("log_file", current.log.Filename()),
		zap.Bool("enabled", cfg.Enabled))
	return nil
}

// teardown closes the logger and flushes diagnostics
func teardown() error {
	if current.log == nil {
		return nil
	}
	err := current.log.Close()
	_ = current.diag.Sync()
	return err
}

// newLogger builds the logger described by cfg
func newLogger(cfg *config.Config, diag *zap.Logger) *logger.Logger {
	return logger.NewBuilder().
		WithDirectory(cfg.Directory).
		WithFilename(cfg.Filename).
		WithEnabled(cfg.Enabled).
		WithCreateDirectory(cfg.CreateDirectory).
		WithDiagnostics(diag).
		Build()
}

// newDiagnostics returns a development logger on stderr when verbose, a no-op logger otherwise
func newDiagnostics(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	z, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("create diagnostics logger: %w", err)
	}
	return z, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(1)
	}
}
