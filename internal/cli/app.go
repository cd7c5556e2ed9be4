package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/errors"
)

// App holds what every command handler needs.
type App struct {
	api          api.API
	config       *config.Config
	out          io.Writer
	errorHandler *ErrorHandler
}

// NewApp creates a CLI application writing to stdout.
func NewApp(api api.API, cfg *config.Config) *App {
	return NewAppWithOutput(api, cfg, os.Stdout)
}

// NewAppWithOutput creates a CLI application writing to out.
func NewAppWithOutput(api api.API, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		api:          api,
		config:       cfg,
		out:          out,
		errorHandler: NewErrorHandler(),
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidInputError("id", arg, "must be a positive integer")
	}
	return id, nil
}
