package services

import (
	"context"

	"task-manager/internal/domain"
)

// Subscriber is notified after every TaskStore mutation with a copy of the
// full task list.
type Subscriber interface {
	TasksChanged(ctx context.Context, tasks []domain.Task)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, tasks []domain.Task)

// TasksChanged calls f.
func (f SubscriberFunc) TasksChanged(ctx context.Context, tasks []domain.Task) {
	f(ctx, tasks)
}

// TaskReplacer is the part of the store an EditSession commits into.
type TaskReplacer interface {
	Replace(ctx context.Context, id int64, task domain.Task) bool
}

// Stats counts tasks per status.
type Stats struct {
	Total      int `json:"total" yaml:"total"`
	Pending    int `json:"pending" yaml:"pending"`
	InProgress int `json:"in_progress" yaml:"in_progress"`
	Completed  int `json:"completed" yaml:"completed"`
}

// Count returns the number of tasks in the given status.
func (s Stats) Count(status domain.Status) int {
	switch status {
	case domain.StatusPending:
		return s.Pending
	case domain.StatusInProgress:
		return s.InProgress
	case domain.StatusCompleted:
		return s.Completed
	}
	return 0
}
