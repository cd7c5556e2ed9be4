package sqlite

import "time"

// Slot is one row of the slots table: a named value and when it was last written.
type Slot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
