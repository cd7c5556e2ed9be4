package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/repository/memory"
)

// testEnv shares one in-memory slot across command invocations, the way the
// SQLite file is shared across runs of the binary.
type testEnv struct {
	t    *testing.T
	repo *memory.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, repo: memory.New()}
}

func (e *testEnv) opener() Opener {
	return func(ctx context.Context, cfg *config.Config) (api.API, func() error, error) {
		return api.New(ctx, e.repo, cfg, zerolog.Nop()), e.repo.Close, nil
	}
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendMemory
	return cfg
}

// run executes one tm invocation and returns its stdout.
func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	out := &bytes.Buffer{}
	root := NewRootCommand(testConfig(), e.opener(), out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err)
	return out
}

// api opens a fresh API over the shared slot, for assertions.
func (e *testEnv) api() api.API {
	return api.New(context.Background(), e.repo, testConfig(), zerolog.Nop())
}

func (e *testEnv) tasks() []domain.Task {
	return e.api().ListTasks(domain.FilterAll)
}

// newTestApp builds an App over a fresh in-memory API.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	apiInstance := api.New(context.Background(), memory.New(), testConfig(), zerolog.Nop())
	return NewAppWithOutput(apiInstance, testConfig(), out), out
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
