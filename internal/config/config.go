package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the settings of the streamlogger command
type Config struct {
	// Directory holds the log file (empty: working directory)
	Directory string `mapstructure:"directory"`
	// Filename overrides the fixed log filename
	Filename string `mapstructure:"filename"`
	// Enabled is the initial enablement of the logger
	Enabled bool `mapstructure:"enabled"`
	// CreateDirectory creates a missing Directory on first write
	CreateDirectory bool `mapstructure:"create_directory"`
	// Verbose turns on diagnostics on stderr
	Verbose bool `mapstructure:"verbose"`
}

const (
	// DefaultConfigName is the config file looked up without --config
	DefaultConfigName = "streamlogger"
	// EnvPrefix prefixes environment overrides, e.g. STREAMLOGGER_ENABLED
	EnvPrefix = "STREAMLOGGER"
)

// Loader reads configuration from a file and the environment
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader for path. An empty path looks for
// streamlogger.{yaml,toml,json} in the working directory.
func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetDefault("directory", "")
	v.SetDefault("filename", "")
	v.SetDefault("enabled", true)
	v.SetDefault("create_directory", false)
	v.SetDefault("verbose", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	// Set environment variable prefix
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return &Loader{v: v}
}

// Viper exposes the underlying viper instance for flag binding
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the config file, if any, and returns the merged settings
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		// Config file not found is not an error
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return cfg, nil
}

// ConfigFile returns the file the settings were read from, if any
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Watch calls onChange with the reloaded settings whenever the config
// file is written. Load must have found a file first.
func (l *Loader) Watch(onChange func(*Config, error)) error {
	if l.v.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file to watch")
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(l.decode())
	})
	l.v.WatchConfig()
	return nil
}

// Load is a shorthand for NewLoader(path).Load()
func Load(path string) (*Config, error) {
	return NewLoader(path).Load()
}
