package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds all configuration options for the task manager
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Display     DisplayConfig     `yaml:"display"`
	Validation  ValidationConfig  `yaml:"validation"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds the persistence slot configuration
type StorageConfig struct {
	Backend        string        `yaml:"backend" env:"TM_STORAGE_BACKEND"`
	Dir            string        `yaml:"dir" env:"TM_STORAGE_DIR"`
	Filename       string        `yaml:"filename" env:"TM_STORAGE_FILENAME"`
	SlotKey        string        `yaml:"slot_key" env:"TM_STORAGE_SLOT_KEY"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"TM_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"TM_STORAGE_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat  string `yaml:"date_format" env:"TM_DISPLAY_DATE_FORMAT"`
	StatusWidth int    `yaml:"status_width" env:"TM_DISPLAY_STATUS_WIDTH"`
}

// ValidationConfig holds validation rules configuration.
// A max length of 0 means no limit.
type ValidationConfig struct {
	NameMaxLength        int  `yaml:"name_max_length" env:"TM_VALIDATION_NAME_MAX"`
	DescriptionMaxLength int  `yaml:"description_max_length" env:"TM_VALIDATION_DESCRIPTION_MAX"`
	StrictEdit           bool `yaml:"strict_edit" env:"TM_VALIDATION_STRICT_EDIT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TM_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TM_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".tm")

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            defaultDir,
			Filename:       "tm.db",
			SlotKey:        "tarefas",
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat:  "02/01/2006",
			StatusWidth: 14,
		},
		Validation: ValidationConfig{
			NameMaxLength:        0,
			DescriptionMaxLength: 0,
			StrictEdit:           false,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetWriteTimeout returns the slot write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
		}
	case BackendMemory:
	default:
		return &ConfigError{Field: "storage.backend", Message: "storage backend must be sqlite or memory"}
	}
	if c.Storage.SlotKey == "" {
		return &ConfigError{Field: "storage.slot_key", Message: "slot key cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.StatusWidth < 0 {
		return &ConfigError{Field: "display.status_width", Message: "status width cannot be negative"}
	}

	if c.Validation.NameMaxLength < 0 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length cannot be negative"}
	}
	if c.Validation.DescriptionMaxLength < 0 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length cannot be negative"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
