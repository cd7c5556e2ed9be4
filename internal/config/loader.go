package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a loader that reads the file named by TM_CONFIG, or
// config.yaml in the default storage directory.
func NewLoader() *Loader {
	cfg := NewConfig()
	path := os.Getenv("TM_CONFIG")
	if path == "" {
		path = filepath.Join(cfg.Storage.Dir, "config.yaml")
	}
	return &Loader{config: cfg, path: path}
}

// NewLoaderWithPath creates a loader for an explicit config file path.
// An empty path skips the file.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{config: NewConfig(), path: path}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Override with environment variables
// Command line flags are applied afterwards through LoadWithOverrides.
func (l *Loader) Load() (*Config, error) {
	if err := l.read(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

func (l *Loader) read() error {
	if l.path != "" {
		_, err := os.Stat(l.path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(l.path, l.config); err != nil {
				return fmt.Errorf("failed to read config file %s: %w", l.path, err)
			}
			return nil
		case !errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("failed to stat config file %s: %w", l.path, err)
		}
	}

	if err := cleanenv.ReadEnv(l.config); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.read(); err != nil {
		return nil, err
	}

	overrides.Apply(l.config)

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Backend      *string
	StorageDir   *string
	Filename     *string
	SlotKey      *string
	WriteTimeout *time.Duration

	// Display overrides
	DateFormat *string

	// Validation overrides
	StrictEdit *bool

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// Apply copies every set override onto config. A nil receiver is a no-op.
func (o *ConfigOverrides) Apply(config *Config) {
	if o == nil {
		return
	}

	if o.Backend != nil {
		config.Storage.Backend = *o.Backend
	}
	if o.StorageDir != nil {
		config.Storage.Dir = *o.StorageDir
	}
	if o.Filename != nil {
		config.Storage.Filename = *o.Filename
	}
	if o.SlotKey != nil {
		config.Storage.SlotKey = *o.SlotKey
	}
	if o.WriteTimeout != nil {
		config.Storage.WriteTimeout = *o.WriteTimeout
	}

	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}

	if o.StrictEdit != nil {
		config.Validation.StrictEdit = *o.StrictEdit
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}
