package config

import (
	"fmt"
	"os"

	"task-manager/internal/repository"
	"task-manager/internal/repository/memory"
	"task-manager/internal/repository/sqlite"
)

// CreateRepository creates the slot repository selected by the configuration
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendSQLite:
		if err := os.MkdirAll(config.Storage.Dir, os.FileMode(config.Storage.DirPermissions)); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}

		repo, err := sqlite.New(config.GetDatabasePath())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown backend %q", config.Storage.Backend)}
	}
}

// CreateTestRepository creates an in-memory SQLite repository for testing
func CreateTestRepository() (repository.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
