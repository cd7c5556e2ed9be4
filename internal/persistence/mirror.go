package persistence

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/repository"
)

// DefaultWriteTimeout bounds a slot operation when no timeout is configured.
const DefaultWriteTimeout = 5 * time.Second

// Mirror keeps one repository slot in step with the task list.
type Mirror struct {
	repo    repository.Repository
	key     string
	timeout time.Duration
	logger  zerolog.Logger
	mapper  *TaskMapper
}

// Option configures a Mirror.
type Option func(*Mirror)

// WithWriteTimeout bounds each slot read and write.
func WithWriteTimeout(d time.Duration) Option {
	return func(m *Mirror) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithLogger sets the logger used for load warnings and write failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Mirror) {
		m.logger = logger
	}
}

// NewMirror creates a mirror of the slot named key in repo.
func NewMirror(repo repository.Repository, key string, opts ...Option) *Mirror {
	m := &Mirror{
		repo:    repo,
		key:     key,
		timeout: DefaultWriteTimeout,
		logger:  zerolog.Nop(),
		mapper:  NewTaskMapper(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With().Str("component", "mirror").Str("slot", key).Logger()
	return m
}

// Key returns the slot key.
func (m *Mirror) Key() string {
	return m.key
}

// Load reads the snapshot. A missing slot yields an empty list silently; an
// unreadable or malformed slot yields an empty list and a warning.
func (m *Mirror) Load(ctx context.Context) []domain.Task {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	value, found, err := m.repo.Get(ctx, m.key)
	if err != nil {
		m.logger.Warn().Err(err).Msg("could not read task snapshot, starting empty")
		return []domain.Task{}
	}
	if !found {
		m.logger.Debug().Msg("no task snapshot, starting empty")
		return []domain.Task{}
	}

	records, err := Decode(value)
	if err != nil {
		m.logger.Warn().Err(err).Msg("discarding malformed task snapshot")
		return []domain.Task{}
	}

	m.logger.Debug().Int("tasks", len(records)).Msg("loaded task snapshot")
	return m.mapper.FromRecordSlice(records)
}

// Sync overwrites the slot with the full task list.
func (m *Mirror) Sync(ctx context.Context, tasks []domain.Task) error {
	value, err := Encode(m.mapper.ToRecordSlice(tasks))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	if err := m.repo.Put(ctx, m.key, value); err != nil {
		if appErr, ok := errors.AsAppError(err); ok && appErr.IsType(errors.ErrorTypeTimeout) {
			appErr.WithContext("timeout", m.timeout)
		}
		return err
	}
	return nil
}

// TasksChanged syncs the snapshot after a store mutation. Failures are
// logged; the in-memory list stays authoritative.
func (m *Mirror) TasksChanged(ctx context.Context, tasks []domain.Task) {
	if err := m.Sync(ctx, tasks); err != nil {
		level := zerolog.WarnLevel
		if errors.ShouldLogError(err) {
			level = zerolog.ErrorLevel
		}
		m.logger.WithLevel(level).Err(err).
			Str("code", errors.GetErrorCode(err)).
			Int("tasks", len(tasks)).
			Msg("could not save task snapshot")
		return
	}
	m.logger.Debug().Int("tasks", len(tasks)).Msg("saved task snapshot")
}
