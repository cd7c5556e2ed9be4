package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"task-manager/internal/errors"
)

// errNoRowsWritten is returned when a write statement reports zero affected rows.
var errNoRowsWritten = stderrors.New("no rows written")

// HandleDatabaseError converts database errors to structured app errors.
// A statement cut off by its context deadline is reported as a timeout.
func HandleDatabaseError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// ValidateRowsAffected checks that a write statement changed at least one row
func ValidateRowsAffected(result sql.Result, operation string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return HandleDatabaseError("get rows affected", err)
	}
	if rows == 0 {
		return HandleDatabaseError(operation, errNoRowsWritten)
	}
	return nil
}

// Execute executes a statement whose affected row count does not matter
func Execute(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) error {
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return HandleDatabaseError(operation, err)
	}
	return nil
}

// ExecuteWithRowsAffected executes a statement and validates that rows were affected
func ExecuteWithRowsAffected(ctx context.Context, db *sql.DB, operation string, query string, args ...interface{}) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return HandleDatabaseError(operation, err)
	}

	return ValidateRowsAffected(result, operation)
}

// QuerySingle executes a query that returns at most one row and scans it.
// A missing row is reported through found rather than as an error.
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), entityType string, args ...interface{}) (result *T, found bool, err error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err = scanFunc(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, HandleDatabaseError(fmt.Sprintf("scan %s", entityType), err)
	}
	return result, true, nil
}
