package domain

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Name        string
	Description string
	CreatedDate string
	Status      Status
}

// NewTask creates a new pending Task with the given name and description.
// The ID and CreatedDate are assigned by the store.
func NewTask(name, description string) Task {
	return Task{
		Name:        name,
		Description: description,
		Status:      StatusPending,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.Description != "" && t.Status.IsValid()
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
