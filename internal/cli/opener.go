package cli

import (
	"context"
	"fmt"
	"io"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// Opener builds the API for a resolved configuration. The returned close
// function releases the underlying storage.
type Opener func(ctx context.Context, cfg *config.Config) (api.API, func() error, error)

// DefaultOpener opens the configured repository and loads the task snapshot.
// Log records go to logOut.
func DefaultOpener(logOut io.Writer) Opener {
	return func(ctx context.Context, cfg *config.Config) (api.API, func() error, error) {
		logger := logging.New(logOut, cfg.Application.Verbose)

		repo, err := config.CreateRepository(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open task storage: %w", err)
		}

		logger.Info().
			Str("backend", cfg.Storage.Backend).
			Str("slot", cfg.Storage.SlotKey).
			Msg("opened task storage")
		logging.Debugf("storage path: %s\n", cfg.GetDatabasePath())

		return api.New(ctx, repo, cfg, logger), repo.Close, nil
	}
}
