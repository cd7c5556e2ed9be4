package validation

import (
	"task-manager/internal/config"
	"task-manager/internal/domain"
)

// Field names reported in validation errors.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldStatus      = "status"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honoring the configured length limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTaskForCreation checks the creation form input. It returns the
// trimmed name and description, or a *ValidationError listing every failing
// field.
func (tv *TaskValidator) ValidateTaskForCreation(name, description string) (string, string, error) {
	validationError := NewValidationError()

	name = tv.validator.TrimAndValidateString(name)
	description = tv.validator.TrimAndValidateString(description)

	tv.checkText(validationError, FieldName, name, tv.validator.NameMaxLength())
	tv.checkText(validationError, FieldDescription, description, tv.validator.DescriptionMaxLength())

	if validationError.HasErrors() {
		return "", "", validationError
	}

	return name, description, nil
}

// ValidateTask validates a complete task record
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if task.ID != 0 && !tv.validator.IsValidTaskID(task.ID) {
		validationError.AddInvalidValueError(FieldID, task.ID, "must be a positive integer")
	}

	tv.checkText(validationError, FieldName, task.Name, tv.validator.NameMaxLength())
	tv.checkText(validationError, FieldDescription, task.Description, tv.validator.DescriptionMaxLength())

	if !tv.validator.IsKnownStatus(task.Status) {
		validationError.AddInvalidValueError(FieldStatus, task.Status, "unknown status")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(FieldID, id, "must be a positive integer")
		return validationError
	}
	return nil
}

func (tv *TaskValidator) checkText(ve *ValidationError, field, value string, max int) {
	if !tv.validator.IsNonEmptyString(value) {
		ve.AddRequiredError(field)
		return
	}
	if !tv.validator.IsWithinMaxLength(value, max) {
		ve.AddInvalidLengthError(field, value, max)
	}
}
