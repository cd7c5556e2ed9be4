package validation

import (
	"strings"
	"unicode/utf8"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks the trimmed character count against max. A max of 0 means no limit.
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return max <= 0 || utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsKnownStatus checks that a status is one of the task statuses
func (v *Validator) IsKnownStatus(status domain.Status) bool {
	return status.IsValid()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// NameMaxLength returns the configured task name limit, 0 when unlimited
func (v *Validator) NameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.NameMaxLength
	}
	return 0
}

// DescriptionMaxLength returns the configured description limit, 0 when unlimited
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 0
}
