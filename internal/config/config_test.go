package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "tm.db", cfg.Storage.Filename)
	assert.Equal(t, "tarefas", cfg.Storage.SlotKey)
	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, "02/01/2006", cfg.Display.DateFormat)
	assert.Zero(t, cfg.Validation.NameMaxLength)
	assert.False(t, cfg.Validation.StrictEdit)
	assert.Equal(t, filepath.Join(cfg.Storage.Dir, "tm.db"), cfg.GetDatabasePath())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "postgres" }, "storage.backend"},
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
		{"empty slot key", func(c *Config) { c.Storage.SlotKey = "" }, "storage.slot_key"},
		{"zero write timeout", func(c *Config) { c.Storage.WriteTimeout = 0 }, "storage.write_timeout"},
		{"empty date format", func(c *Config) { c.Display.DateFormat = "" }, "display.date_format"},
		{"negative status width", func(c *Config) { c.Display.StatusWidth = -1 }, "display.status_width"},
		{"negative name max", func(c *Config) { c.Validation.NameMaxLength = -1 }, "validation.name_max_length"},
		{"negative description max", func(c *Config) { c.Validation.DescriptionMaxLength = -1 }, "validation.description_max_length"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()

			var configErr *ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestConfig_ValidateMemoryBackendIgnoresDir(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Backend = BackendMemory
	cfg.Storage.Dir = ""

	assert.NoError(t, cfg.Validate())
}

func TestLoader_Environment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TM_STORAGE_DIR", dir)
	t.Setenv("TM_STORAGE_SLOT_KEY", "tasks")
	t.Setenv("TM_STORAGE_WRITE_TIMEOUT", "2s")
	t.Setenv("TM_VALIDATION_STRICT_EDIT", "true")
	t.Setenv("TM_VALIDATION_NAME_MAX", "80")

	cfg, err := NewLoaderWithPath("").Load()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, "tasks", cfg.Storage.SlotKey)
	assert.Equal(t, 2*time.Second, cfg.Storage.WriteTimeout)
	assert.True(t, cfg.Validation.StrictEdit)
	assert.Equal(t, 80, cfg.Validation.NameMaxLength)
}

func TestLoader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `storage:
  backend: memory
  slot_key: from-file
display:
  date_format: "2006-01-02"
validation:
  description_max_length: 500
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoaderWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "from-file", cfg.Storage.SlotKey)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, 500, cfg.Validation.DescriptionMaxLength)
	assert.Equal(t, "tm.db", cfg.Storage.Filename, "unset keys keep their defaults")
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  slot_key: from-file\n"), 0644))
	t.Setenv("TM_STORAGE_SLOT_KEY", "from-env")

	cfg, err := NewLoaderWithPath(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Storage.SlotKey)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoaderWithPath(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	require.NoError(t, err)

	assert.Equal(t, "tarefas", cfg.Storage.SlotKey)
}

func TestLoader_InvalidConfig(t *testing.T) {
	t.Setenv("TM_STORAGE_BACKEND", "postgres")

	_, err := NewLoaderWithPath("").Load()

	var configErr *ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	backend := BackendMemory
	slot := "override"
	strict := true
	timeout := 10 * time.Second

	cfg, err := NewLoaderWithPath("").LoadWithOverrides(&ConfigOverrides{
		Backend:      &backend,
		SlotKey:      &slot,
		StrictEdit:   &strict,
		WriteTimeout: &timeout,
	})
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "override", cfg.Storage.SlotKey)
	assert.True(t, cfg.Validation.StrictEdit)
	assert.Equal(t, timeout, cfg.Storage.WriteTimeout)
}

func TestConfigOverrides_ApplyNil(t *testing.T) {
	cfg := NewConfig()
	var overrides *ConfigOverrides

	overrides.Apply(cfg)

	assert.Equal(t, NewConfig(), cfg)
}
