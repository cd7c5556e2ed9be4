// Package memory provides a map-backed slot repository for tests and for the
// "memory" storage backend.
package memory

import (
	"context"
	"sync"

	"task-manager/internal/errors"
)

// Repository keeps slots in a map. The zero value is not usable; call New.
type Repository struct {
	mu       sync.RWMutex
	slots    map[string]string
	writeErr error
	writes   int
}

// New creates an empty in-memory repository
func New() *Repository {
	return &Repository{slots: make(map[string]string)}
}

// NewWithSlots creates a repository pre-populated with the given slots
func NewWithSlots(slots map[string]string) *Repository {
	r := New()
	for k, v := range slots {
		r.slots[k] = v
	}
	return r
}

// FailWrites makes every following Put return err, wrapped as a persistence
// error. Passing nil restores normal writes.
func (r *Repository) FailWrites(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writeErr = err
}

// Writes returns the number of successful Put calls.
func (r *Repository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.NewStorageError("read slot", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.slots[key]
	return value, ok, nil
}

func (r *Repository) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("write slot", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return errors.NewPersistenceError("write slot", r.writeErr)
	}
	r.slots[key] = value
	r.writes++
	return nil
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("delete slot", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
	return nil
}

// Close is a no-op.
func (r *Repository) Close() error {
	return nil
}
