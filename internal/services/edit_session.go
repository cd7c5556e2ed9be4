package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

var (
	// ErrSessionClosed is returned by operations that need an open session.
	ErrSessionClosed = errors.NewStateError("SESSION_CLOSED", "no task is being edited")
	// ErrSessionOpen is returned by Open while another task is being edited.
	ErrSessionOpen = errors.NewStateError("SESSION_OPEN", "a task is already being edited")
)

// EditSession holds a private copy of one task while it is edited. Changes
// reach the store only on Commit.
type EditSession struct {
	store     TaskReplacer
	validator *validation.TaskValidator
	logger    zerolog.Logger

	id    string
	draft *domain.Task
}

// SessionOption configures an EditSession.
type SessionOption func(*EditSession)

// WithCommitValidation re-validates the draft on Commit. Without it a commit
// stores whatever the draft holds, empty fields included.
func WithCommitValidation(v *validation.TaskValidator) SessionOption {
	return func(s *EditSession) {
		s.validator = v
	}
}

// WithSessionLogger sets the session logger.
func WithSessionLogger(logger zerolog.Logger) SessionOption {
	return func(s *EditSession) {
		s.logger = logger
	}
}

// NewEditSession creates a closed session committing into store.
func NewEditSession(store TaskReplacer, opts ...SessionOption) *EditSession {
	s := &EditSession{
		store:  store,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts editing a copy of task.
func (s *EditSession) Open(task domain.Task) error {
	if s.IsOpen() {
		return ErrSessionOpen
	}
	draft := task
	s.draft = &draft
	s.id = uuid.NewString()
	s.logger.Debug().Str("session", s.id).Int64("task_id", task.ID).Msg("edit session opened")
	return nil
}

// IsOpen reports whether a task is being edited.
func (s *EditSession) IsOpen() bool {
	return s.draft != nil
}

// ID returns the session id, empty when closed.
func (s *EditSession) ID() string {
	return s.id
}

// Current returns a copy of the draft.
func (s *EditSession) Current() (domain.Task, error) {
	if !s.IsOpen() {
		return domain.Task{}, ErrSessionClosed
	}
	return *s.draft, nil
}

// SetName replaces the draft name.
func (s *EditSession) SetName(name string) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	s.draft.Name = name
	return nil
}

// SetDescription replaces the draft description.
func (s *EditSession) SetDescription(description string) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	s.draft.Description = description
	return nil
}

// SetStatus moves the draft to status, which must be one of the known values.
func (s *EditSession) SetStatus(status domain.Status) error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	if !status.IsValid() {
		return errors.NewInvalidInputError(validation.FieldStatus, status, "unknown status")
	}
	s.draft.Status = status
	return nil
}

// Commit replaces the stored task with the draft and closes the session. It
// reports whether the task still existed. With commit validation enabled an
// invalid draft is rejected and the session stays open.
func (s *EditSession) Commit(ctx context.Context) (bool, error) {
	if !s.IsOpen() {
		return false, ErrSessionClosed
	}
	if s.validator != nil {
		if err := s.validator.ValidateTask(*s.draft); err != nil {
			s.logger.Debug().Str("session", s.id).Int64("task_id", s.draft.ID).Msg("edit session commit rejected")
			return false, errors.NewValidationError("invalid task", err).WithContext("session", s.id)
		}
	}

	draft := *s.draft
	replaced := s.store.Replace(ctx, draft.ID, draft)
	s.logger.Debug().Str("session", s.id).Int64("task_id", draft.ID).Bool("replaced", replaced).Msg("edit session committed")
	s.close()
	return replaced, nil
}

// Cancel discards the draft and closes the session.
func (s *EditSession) Cancel() error {
	if !s.IsOpen() {
		return ErrSessionClosed
	}
	s.logger.Debug().Str("session", s.id).Msg("edit session cancelled")
	s.close()
	return nil
}

func (s *EditSession) close() {
	s.draft = nil
	s.id = ""
}
