// Package persistence mirrors the task list into a key-value slot as a JSON
// snapshot and reads it back on startup.
package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"task-manager/internal/domain"
)

// ErrMalformedSnapshot is wrapped by every Decode failure.
var ErrMalformedSnapshot = errors.New("malformed task snapshot")

// Record is the persisted shape of a task.
type Record struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	CreatedDate string `json:"createdDate" yaml:"created_date"`
	Status      string `json:"status" yaml:"status"`
}

// Snapshot keys, with the names the browser version of the app wrote.
var (
	keyID          = []string{"id"}
	keyName        = []string{"name", "nome"}
	keyDescription = []string{"description", "descricao"}
	keyCreatedDate = []string{"createdDate", "data"}
	keyStatus      = []string{"status", "progresso"}
)

// Encode serializes records as a JSON array. An empty list encodes as "[]".
func Encode(records []Record) (string, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses a snapshot. The value must be a JSON array of objects, each
// with an integer id, string name, description and createdDate, and a known
// status. Ids must be unique. Any violation rejects the whole snapshot.
func Decode(value string) ([]Record, error) {
	trimmed := bytes.TrimSpace([]byte(value))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: not a JSON array", ErrMalformedSnapshot)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	records := make([]Record, 0, len(raw))
	seen := make(map[int64]bool, len(raw))
	for i, fields := range raw {
		record, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedSnapshot, i, err)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("%w: record %d: duplicate id %d", ErrMalformedSnapshot, i, record.ID)
		}
		seen[record.ID] = true
		records = append(records, record)
	}
	return records, nil
}

func decodeRecord(fields map[string]json.RawMessage) (Record, error) {
	if fields == nil {
		return Record{}, errors.New("not an object")
	}

	var (
		record Record
		err    error
	)
	if record.ID, err = intField(fields, keyID); err != nil {
		return Record{}, err
	}
	if record.ID <= 0 {
		return Record{}, fmt.Errorf("id %d is not positive", record.ID)
	}
	if record.Name, err = stringField(fields, keyName); err != nil {
		return Record{}, err
	}
	if record.Description, err = stringField(fields, keyDescription); err != nil {
		return Record{}, err
	}
	if record.CreatedDate, err = stringField(fields, keyCreatedDate); err != nil {
		return Record{}, err
	}
	if record.Status, err = stringField(fields, keyStatus); err != nil {
		return Record{}, err
	}
	if !domain.Status(record.Status).IsValid() {
		return Record{}, fmt.Errorf("unknown status %q", record.Status)
	}
	return record, nil
}

func lookup(fields map[string]json.RawMessage, keys []string) (json.RawMessage, error) {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("field %q is null", key)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("missing field %q", keys[0])
}

func intField(fields map[string]json.RawMessage, keys []string) (int64, error) {
	raw, err := lookup(fields, keys)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("field %q is not an integer", keys[0])
	}
	return id, nil
}

func stringField(fields map[string]json.RawMessage, keys []string) (string, error) {
	raw, err := lookup(fields, keys)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %q is not a string", keys[0])
	}
	return s, nil
}
