package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

func setupSession(t *testing.T, opts ...SessionOption) (*TaskStore, *EditSession, domain.Task) {
	t.Helper()
	store := NewTaskStore(nil, WithClock(fixedClock(testNow)))
	task, err := store.Create(context.Background(), "Buy milk", "2 liters")
	require.NoError(t, err)
	return store, NewEditSession(store, opts...), *task
}

func TestEditSession_BuyMilkScenario(t *testing.T) {
	store, session, task := setupSession(t)
	ctx := context.Background()

	require.Len(t, store.List(), 1)
	assert.Equal(t, domain.StatusPending, store.List()[0].Status)

	require.NoError(t, session.Open(task))
	require.NoError(t, session.SetStatus(domain.StatusCompleted))
	replaced, err := session.Commit(ctx)
	require.NoError(t, err)
	assert.True(t, replaced)

	completed := ApplyFilter(store.List(), domain.FilterFor(domain.StatusCompleted))
	require.Len(t, completed, 1)
	assert.Equal(t, task.ID, completed[0].ID)
	assert.Equal(t, "Buy milk", completed[0].Name)
	assert.Empty(t, ApplyFilter(store.List(), domain.FilterFor(domain.StatusPending)))
}

func TestEditSession_StateMachine(t *testing.T) {
	_, session, task := setupSession(t)
	ctx := context.Background()

	assert.False(t, session.IsOpen())
	assert.Empty(t, session.ID())

	_, err := session.Current()
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, session.SetName("x"), ErrSessionClosed)
	assert.ErrorIs(t, session.SetDescription("x"), ErrSessionClosed)
	assert.ErrorIs(t, session.SetStatus(domain.StatusCompleted), ErrSessionClosed)
	_, err = session.Commit(ctx)
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, session.Cancel(), ErrSessionClosed)

	require.NoError(t, session.Open(task))
	assert.True(t, session.IsOpen())
	assert.NotEmpty(t, session.ID())
	assert.ErrorIs(t, session.Open(task), ErrSessionOpen)
	assert.True(t, errors.IsErrorType(session.Open(task), errors.ErrorTypeState))

	require.NoError(t, session.Cancel())
	assert.False(t, session.IsOpen())
	assert.Empty(t, session.ID())
}

func TestEditSession_MutatorsTouchOnlyTheCopy(t *testing.T) {
	store, session, task := setupSession(t)

	require.NoError(t, session.Open(task))
	require.NoError(t, session.SetName("Buy oat milk"))
	require.NoError(t, session.SetDescription("1 liter"))
	require.NoError(t, session.SetStatus(domain.StatusInProgress))

	current, err := session.Current()
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", current.Name)
	assert.Equal(t, "1 liter", current.Description)
	assert.Equal(t, domain.StatusInProgress, current.Status)

	stored, _ := store.Get(task.ID)
	assert.Equal(t, task, *stored)
}

func TestEditSession_CancelLeavesStoreUnchanged(t *testing.T) {
	store, session, task := setupSession(t)
	sub := &recordingSubscriber{}
	store.Subscribe(sub)

	require.NoError(t, session.Open(task))
	require.NoError(t, session.SetName("changed"))
	require.NoError(t, session.Cancel())

	assert.Equal(t, []domain.Task{task}, store.List())
	assert.Empty(t, sub.calls)
}

func TestEditSession_SetStatusRejectsUnknownStatus(t *testing.T) {
	_, session, task := setupSession(t)
	require.NoError(t, session.Open(task))

	err := session.SetStatus("Archived")

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	current, _ := session.Current()
	assert.Equal(t, domain.StatusPending, current.Status)
}

func TestEditSession_CommitDeletedTask(t *testing.T) {
	store, session, task := setupSession(t)
	ctx := context.Background()

	require.NoError(t, session.Open(task))
	store.Delete(ctx, task.ID)
	replaced, err := session.Commit(ctx)

	require.NoError(t, err)
	assert.False(t, replaced)
	assert.False(t, session.IsOpen())
	assert.Equal(t, 0, store.Len())
}

// Creation rejects empty fields but a default commit does not re-validate.
// This records the existing behavior; WithCommitValidation closes the gap.
func TestEditSession_KnownGap_CommitSkipsValidation(t *testing.T) {
	store, session, task := setupSession(t)

	require.NoError(t, session.Open(task))
	require.NoError(t, session.SetName(""))
	require.NoError(t, session.SetDescription("   "))
	replaced, err := session.Commit(context.Background())

	require.NoError(t, err)
	assert.True(t, replaced)
	stored, _ := store.Get(task.ID)
	assert.Equal(t, "", stored.Name)
	assert.Equal(t, "   ", stored.Description)
}

func TestEditSession_CommitValidation(t *testing.T) {
	store, session, task := setupSession(t, WithCommitValidation(validation.NewTaskValidator()))
	ctx := context.Background()

	require.NoError(t, session.Open(task))
	require.NoError(t, session.SetName(""))
	replaced, err := session.Commit(ctx)

	require.Error(t, err)
	assert.False(t, replaced)
	ve, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"name": validation.RequiredMessage}, ve.FieldMessages())
	assert.True(t, session.IsOpen(), "a rejected commit keeps the session open")
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	sessionID, _ := appErr.GetContext("session")
	assert.Equal(t, session.ID(), sessionID)
	stored, _ := store.Get(task.ID)
	assert.Equal(t, "Buy milk", stored.Name)

	require.NoError(t, session.SetName("Buy bread"))
	replaced, err = session.Commit(ctx)
	require.NoError(t, err)
	assert.True(t, replaced)
	stored, _ = store.Get(task.ID)
	assert.Equal(t, "Buy bread", stored.Name)
}
