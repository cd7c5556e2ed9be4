package sqlite

import (
	"context"
	"database/sql"
	"time"

	"task-manager/internal/errors"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores slots in a single SQLite table
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewPersistenceError("open database", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("run migrations", err)
	}

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get retrieves the value of a slot
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	slot, found, err := r.GetSlot(ctx, key)
	if err != nil || !found {
		return "", found, err
	}
	return slot.Value, true, nil
}

// GetSlot retrieves a slot together with its last write time
func (r *SQLiteRepository) GetSlot(ctx context.Context, key string) (*Slot, bool, error) {
	query := `SELECT key, value, updated_at FROM slots WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanSlot, "slot", key)
}

// Put creates or overwrites a slot
func (r *SQLiteRepository) Put(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO slots (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return ExecuteWithRowsAffected(ctx, r.db, "write slot", query, key, value, FormatTimeForDB(r.now()))
}

// Delete removes a slot
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM slots WHERE key = ?`
	return Execute(ctx, r.db, "delete slot", query, key)
}
