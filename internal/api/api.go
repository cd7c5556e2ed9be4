package api

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/persistence"
	"task-manager/internal/repository"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// API defines the task operations offered to a presentation surface.
type API interface {
	CreateTask(ctx context.Context, name, description string) (*domain.Task, error)
	GetTask(id int64) (*domain.Task, error)
	ListTasks(filter domain.Filter) []domain.Task
	DeleteTask(ctx context.Context, id int64) bool

	// BeginEdit opens an edit session on a copy of the task.
	BeginEdit(id int64) (*services.EditSession, error)
	// UpdateTask applies changes through an edit session and commits them.
	UpdateTask(ctx context.Context, id int64, changes TaskChanges) (*domain.Task, error)

	Stats() services.Stats
}

// TaskChanges lists the fields to change; nil fields are left as they are.
type TaskChanges struct {
	Name        *string
	Description *string
	Status      *domain.Status
}

// IsEmpty reports whether no field is set.
func (c TaskChanges) IsEmpty() bool {
	return c.Name == nil && c.Description == nil && c.Status == nil
}

type apiImpl struct {
	store           *services.TaskStore
	commitValidator *validation.TaskValidator
	logger          zerolog.Logger
}

// New loads the task snapshot from repo and returns an API whose every
// mutation is mirrored back to the slot.
func New(ctx context.Context, repo repository.Repository, cfg *config.Config, logger zerolog.Logger) API {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	mirror := persistence.NewMirror(repo, cfg.Storage.SlotKey,
		persistence.WithWriteTimeout(cfg.GetWriteTimeout()),
		persistence.WithLogger(logger),
	)

	taskValidator := validation.NewTaskValidatorWithConfig(cfg)
	store := services.NewTaskStore(mirror.Load(ctx),
		services.WithDateLayout(cfg.Display.DateFormat),
		services.WithValidator(taskValidator),
		services.WithLogger(logger),
	)
	store.Subscribe(mirror)

	a := &apiImpl{
		store:  store,
		logger: logger,
	}
	if cfg.Validation.StrictEdit {
		a.commitValidator = taskValidator
	}
	return a
}

func (a *apiImpl) CreateTask(ctx context.Context, name, description string) (*domain.Task, error) {
	return a.store.Create(ctx, name, description)
}

func (a *apiImpl) GetTask(id int64) (*domain.Task, error) {
	task, ok := a.store.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("task", strconv.FormatInt(id, 10))
	}
	return task, nil
}

func (a *apiImpl) ListTasks(filter domain.Filter) []domain.Task {
	return services.ApplyFilter(a.store.List(), filter)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id int64) bool {
	return a.store.Delete(ctx, id)
}

func (a *apiImpl) BeginEdit(id int64) (*services.EditSession, error) {
	task, err := a.GetTask(id)
	if err != nil {
		return nil, err
	}

	opts := []services.SessionOption{services.WithSessionLogger(a.logger)}
	if a.commitValidator != nil {
		opts = append(opts, services.WithCommitValidation(a.commitValidator))
	}
	session := services.NewEditSession(a.store, opts...)
	if err := session.Open(*task); err != nil {
		return nil, err
	}
	return session, nil
}

func (a *apiImpl) UpdateTask(ctx context.Context, id int64, changes TaskChanges) (*domain.Task, error) {
	session, err := a.BeginEdit(id)
	if err != nil {
		return nil, err
	}
	sessionID := session.ID()
	logger := a.logger.With().Str("session", sessionID).Int64("task_id", id).Logger()

	if err := applyChanges(session, changes); err != nil {
		_ = session.Cancel()
		logger.Debug().Err(err).Msg("update rejected")
		return nil, withSession(err, sessionID)
	}

	replaced, err := session.Commit(ctx)
	if err != nil {
		_ = session.Cancel()
		logger.Debug().Err(err).Msg("update rejected")
		return nil, withSession(err, sessionID)
	}
	if !replaced {
		return nil, errors.NewNotFoundError("task", strconv.FormatInt(id, 10)).WithContext("session", sessionID)
	}
	logger.Info().Msg("task updated")
	return a.GetTask(id)
}

// withSession tags an application error with the edit session it came from.
// State errors are shared sentinels and stay untouched.
func withSession(err error, sessionID string) error {
	if appErr, ok := errors.AsAppError(err); ok && !appErr.IsType(errors.ErrorTypeState) {
		appErr.WithContext("session", sessionID)
	}
	return err
}

func (a *apiImpl) Stats() services.Stats {
	return services.CountByStatus(a.store.List())
}

func applyChanges(session *services.EditSession, changes TaskChanges) error {
	if changes.Name != nil {
		if err := session.SetName(*changes.Name); err != nil {
			return err
		}
	}
	if changes.Description != nil {
		if err := session.SetDescription(*changes.Description); err != nil {
			return err
		}
	}
	if changes.Status != nil {
		if err := session.SetStatus(*changes.Status); err != nil {
			return err
		}
	}
	return nil
}
