// Package repository defines the key-value slot storage the task snapshot is
// mirrored into.
package repository

import "context"

// Repository is a named-slot key-value store.
type Repository interface {
	// Get returns the value stored under key. found is false when the slot
	// has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put overwrites the slot unconditionally.
	Put(ctx context.Context, key string, value string) error

	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
