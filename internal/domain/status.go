package domain

import "strings"

// Status is the progress state of a task. The values are the strings stored
// in the snapshot and shown to the user.
type Status string

const (
	StatusPending    Status = "Pendente"
	StatusInProgress Status = "Em andamento"
	StatusCompleted  Status = "Concluída"
)

// Statuses returns every status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Label returns the English name of the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

var statusAliases = map[string]Status{
	"pendente":     StatusPending,
	"pending":      StatusPending,
	"em andamento": StatusInProgress,
	"in progress":  StatusInProgress,
	"concluída":    StatusCompleted,
	"concluida":    StatusCompleted,
	"completed":    StatusCompleted,
}

// ParseStatus maps user input to a Status. It accepts the stored values and
// their English names, ignoring case and treating '-' and '_' as spaces.
func ParseStatus(s string) (Status, bool) {
	if status := Status(s); status.IsValid() {
		return status, true
	}
	status, ok := statusAliases[normalizeKeyword(s)]
	return status, ok
}

func normalizeKeyword(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", " ", "_", " ").Replace(s)
}
