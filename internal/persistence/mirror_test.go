package persistence

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/repository/memory"
)

const testKey = "tarefas"

func bufferLogger() (*bytes.Buffer, zerolog.Logger) {
	buf := &bytes.Buffer{}
	return buf, zerolog.New(buf)
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: 1, Name: "Buy milk", Description: "2 liters", CreatedDate: "01/01/2025", Status: domain.StatusPending},
		{ID: 2, Name: "Walk dog", Description: "park", CreatedDate: "01/01/2025", Status: domain.StatusCompleted},
	}
}

func TestMirror_LoadMissingSlot(t *testing.T) {
	buf, logger := bufferLogger()
	mirror := NewMirror(memory.New(), testKey, WithLogger(logger.Level(zerolog.WarnLevel)))

	tasks := mirror.Load(context.Background())

	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
	assert.Zero(t, buf.Len(), "a missing slot is not a warning")
}

func TestMirror_LoadMalformedSlot(t *testing.T) {
	repo := memory.NewWithSlots(map[string]string{testKey: "{{not json"})
	buf, logger := bufferLogger()
	mirror := NewMirror(repo, testKey, WithLogger(logger))

	tasks := mirror.Load(context.Background())

	assert.Empty(t, tasks)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "discarding malformed task snapshot")
}

func TestMirror_LoadNotAnArray(t *testing.T) {
	repo := memory.NewWithSlots(map[string]string{testKey: `{"id":1}`})
	buf, logger := bufferLogger()

	tasks := NewMirror(repo, testKey, WithLogger(logger)).Load(context.Background())

	assert.Empty(t, tasks)
	assert.Contains(t, buf.String(), "not a JSON array")
}

func TestMirror_LoadReadFailure(t *testing.T) {
	buf, logger := bufferLogger()
	mirror := NewMirror(memory.New(), testKey, WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Empty(t, mirror.Load(ctx))
	assert.Contains(t, buf.String(), "could not read task snapshot")
}

func TestMirror_SyncThenLoad(t *testing.T) {
	repo := memory.New()
	mirror := NewMirror(repo, testKey)
	ctx := context.Background()

	require.NoError(t, mirror.Sync(ctx, sampleTasks()))
	assert.Equal(t, 1, repo.Writes())
	assert.Equal(t, sampleTasks(), NewMirror(repo, testKey).Load(ctx))
}

func TestMirror_SyncEmptyWritesEmptyArray(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, NewMirror(repo, testKey).Sync(ctx, nil))

	value, found, err := repo.Get(ctx, testKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestMirror_TasksChangedSwallowsWriteFailure(t *testing.T) {
	repo := memory.New()
	repo.FailWrites(errors.New("quota exceeded"))
	buf, logger := bufferLogger()
	mirror := NewMirror(repo, testKey, WithLogger(logger))

	assert.NotPanics(t, func() {
		mirror.TasksChanged(context.Background(), sampleTasks())
	})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "quota exceeded")
	assert.Zero(t, repo.Writes())
}

// stallingRepository holds every write until the caller's deadline passes.
type stallingRepository struct {
	*memory.Repository
}

func (r stallingRepository) Put(ctx context.Context, key string, value string) error {
	<-ctx.Done()
	return apperrors.NewStorageError("write slot", ctx.Err())
}

func TestMirror_SyncPastWriteTimeout(t *testing.T) {
	buf, logger := bufferLogger()
	mirror := NewMirror(stallingRepository{memory.New()}, testKey,
		WithWriteTimeout(10*time.Millisecond), WithLogger(logger))

	err := mirror.Sync(context.Background(), sampleTasks())
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout))
	assert.Equal(t, "The operation timed out after 10ms. Please try again.", apperrors.GetUserMessage(err))

	mirror.TasksChanged(context.Background(), sampleTasks())
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"code":"TIMEOUT"`)
}

func TestMirror_Key(t *testing.T) {
	assert.Equal(t, "custom", NewMirror(memory.New(), "custom").Key())
}
