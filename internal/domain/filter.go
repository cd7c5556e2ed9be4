package domain

// Filter selects which tasks are shown: every task, or the tasks in one status.
type Filter string

// FilterAll shows every task.
const FilterAll Filter = "todos"

// FilterFor returns the filter that keeps tasks in the given status.
func FilterFor(status Status) Filter {
	return Filter(status)
}

// Filters returns every filter value in display order.
func Filters() []Filter {
	filters := []Filter{FilterAll}
	for _, status := range Statuses() {
		filters = append(filters, FilterFor(status))
	}
	return filters
}

// IsValid reports whether f is FilterAll or names a known status.
func (f Filter) IsValid() bool {
	return f == FilterAll || Status(f).IsValid()
}

// Matches reports whether the task passes the filter.
func (f Filter) Matches(t Task) bool {
	return f == FilterAll || Status(f) == t.Status
}

// ParseFilter maps user input to a Filter. An empty string means FilterAll.
func ParseFilter(s string) (Filter, bool) {
	switch normalizeKeyword(s) {
	case "", "todos", "all":
		return FilterAll, true
	}
	status, ok := ParseStatus(s)
	if !ok {
		return "", false
	}
	return FilterFor(status), true
}
