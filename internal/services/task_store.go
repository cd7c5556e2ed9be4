package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// DefaultDateLayout formats the created date of new tasks.
const DefaultDateLayout = "02/01/2006"

// TaskStore owns the task list. Reads return copies; every mutation notifies
// the subscribers after the lock is released.
type TaskStore struct {
	mu          sync.Mutex
	tasks       []domain.Task
	lastID      int64
	subscribers []Subscriber

	now        func() time.Time
	dateLayout string
	validator  *validation.TaskValidator
	logger     zerolog.Logger
}

// StoreOption configures a TaskStore.
type StoreOption func(*TaskStore)

// WithClock sets the time source used for ids and created dates.
func WithClock(now func() time.Time) StoreOption {
	return func(s *TaskStore) {
		s.now = now
	}
}

// WithDateLayout sets the created date layout.
func WithDateLayout(layout string) StoreOption {
	return func(s *TaskStore) {
		if layout != "" {
			s.dateLayout = layout
		}
	}
}

// WithValidator replaces the creation validator.
func WithValidator(v *validation.TaskValidator) StoreOption {
	return func(s *TaskStore) {
		s.validator = v
	}
}

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) StoreOption {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

// NewTaskStore creates a store holding a copy of initial.
func NewTaskStore(initial []domain.Task, opts ...StoreOption) *TaskStore {
	s := &TaskStore{
		tasks:      make([]domain.Task, len(initial)),
		now:        time.Now,
		dateLayout: DefaultDateLayout,
		validator:  validation.NewTaskValidator(),
		logger:     zerolog.Nop(),
	}
	copy(s.tasks, initial)
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers sub for mutation notifications.
func (s *TaskStore) Subscribe(sub Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, sub)
}

// Create validates the input and appends a new pending task.
func (s *TaskStore) Create(ctx context.Context, name, description string) (*domain.Task, error) {
	name, description, err := s.validator.ValidateTaskForCreation(name, description)
	if err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	s.mu.Lock()
	now := s.now()
	task := domain.NewTask(name, description)
	task.ID = s.nextID(now)
	task.CreatedDate = now.Format(s.dateLayout)
	s.tasks = append(s.tasks, task)
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().Int64("task_id", task.ID).Msg("task created")
	s.notify(ctx, snapshot, subs)
	return &task, nil
}

// Delete removes the task with the given id. It reports whether a task was
// removed; an unknown id is a no-op.
func (s *TaskStore) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().Int64("task_id", id).Msg("task deleted")
	s.notify(ctx, snapshot, subs)
	return true
}

// Replace overwrites the task with the given id. The id and created date of
// the stored task are kept. It reports whether a task matched.
func (s *TaskStore) Replace(ctx context.Context, id int64, task domain.Task) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	task.ID = id
	task.CreatedDate = s.tasks[i].CreatedDate
	s.tasks[i] = task
	snapshot, subs := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug().Int64("task_id", id).Msg("task replaced")
	s.notify(ctx, snapshot, subs)
	return true
}

// List returns the tasks in insertion order.
func (s *TaskStore) List() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks, _ := s.snapshotLocked()
	return tasks
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id int64) (*domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return nil, false
	}
	task := s.tasks[i]
	return &task, true
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// nextID derives an id from the clock, bumped past the last id when the
// clock has not advanced.
func (s *TaskStore) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *TaskStore) indexLocked(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) snapshotLocked() ([]domain.Task, []Subscriber) {
	tasks := make([]domain.Task, len(s.tasks))
	copy(tasks, s.tasks)
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	return tasks, subs
}

func (s *TaskStore) notify(ctx context.Context, tasks []domain.Task, subs []Subscriber) {
	for _, sub := range subs {
		view := make([]domain.Task, len(tasks))
		copy(view, tasks)
		sub.TasksChanged(ctx, view)
	}
}
