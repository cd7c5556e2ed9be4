package services

import "task-manager/internal/domain"

// ApplyFilter returns the tasks that pass f, in their original order.
// FilterAll returns tasks unchanged.
func ApplyFilter(tasks []domain.Task, f domain.Filter) []domain.Task {
	if f == domain.FilterAll {
		return tasks
	}
	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// CountByStatus tallies tasks per status.
func CountByStatus(tasks []domain.Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusInProgress:
			stats.InProgress++
		case domain.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
