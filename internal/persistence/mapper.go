package persistence

import "task-manager/internal/domain"

// TaskMapper converts between domain tasks and snapshot records.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a snapshot Record.
func (m *TaskMapper) ToRecord(task domain.Task) Record {
	return Record{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		CreatedDate: task.CreatedDate,
		Status:      string(task.Status),
	}
}

// FromRecord converts a snapshot Record to a domain Task.
func (m *TaskMapper) FromRecord(record Record) domain.Task {
	return domain.Task{
		ID:          record.ID,
		Name:        record.Name,
		Description: record.Description,
		CreatedDate: record.CreatedDate,
		Status:      domain.Status(record.Status),
	}
}

// ToRecordSlice converts a slice of domain Tasks to Records.
func (m *TaskMapper) ToRecordSlice(tasks []domain.Task) []Record {
	records := make([]Record, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of Records to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []Record) []domain.Task {
	tasks := make([]domain.Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromRecord(record)
	}
	return tasks
}
