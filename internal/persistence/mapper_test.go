package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-manager/internal/domain"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	tasks := []domain.Task{
		{ID: 1, Name: "a", Description: "b", CreatedDate: "01/01/2025", Status: domain.StatusPending},
		{ID: 2, Name: "c", Description: "d", CreatedDate: "02/01/2025", Status: domain.StatusCompleted},
	}

	records := mapper.ToRecordSlice(tasks)
	assert.Equal(t, "Concluída", records[1].Status)
	assert.Equal(t, tasks, mapper.FromRecordSlice(records))
}

func TestTaskMapper_EmptySlices(t *testing.T) {
	mapper := NewTaskMapper()

	assert.NotNil(t, mapper.ToRecordSlice(nil))
	assert.Empty(t, mapper.FromRecordSlice(nil))
}
