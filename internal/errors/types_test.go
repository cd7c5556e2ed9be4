package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"Persistence", ErrorTypePersistence, "persistence"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"State", ErrorTypeState, "state"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.errorType.String(); result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name:     "Error without cause",
			appError: &AppError{Type: ErrorTypeValidation, Message: "invalid input"},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypePersistence,
				Message: "write failed",
				Cause:   errors.New("quota exceeded"),
			},
			expected: "persistence: write failed (caused by: quota exceeded)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.appError.Error(); result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{Type: ErrorTypePersistence, Message: "wrapped error", Cause: cause}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
}

func TestAppError_Is(t *testing.T) {
	appError1 := &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
	appError2 := &AppError{Type: ErrorTypeValidation, Code: "VALIDATION_FAILED"}
	appError3 := &AppError{Type: ErrorTypePersistence, Code: "PERSISTENCE_ERROR"}

	tests := []struct {
		name     string
		err      *AppError
		target   error
		expected bool
	}{
		{"Same type and code", appError1, appError2, true},
		{"Different type", appError1, appError3, false},
		{"Regular error", appError1, errors.New("regular error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.err.Is(tt.target); result != tt.expected {
				t.Errorf("AppError.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_WithContext(t *testing.T) {
	appError := &AppError{Type: ErrorTypeValidation, Message: "test error"}

	result := appError.WithContext("field", "name")
	if result != appError {
		t.Errorf("WithContext should return the same instance")
	}
	if appError.Context["field"] != "name" {
		t.Errorf("Context should contain the added key-value pair")
	}
}

func TestAppError_GetContext(t *testing.T) {
	appError := &AppError{
		Type:    ErrorTypeValidation,
		Context: map[string]interface{}{"field": "name"},
	}

	value, exists := appError.GetContext("field")
	if !exists || value != "name" {
		t.Errorf("GetContext should return the stored value")
	}

	_, exists = appError.GetContext("nonexistent")
	if exists {
		t.Errorf("GetContext should return false for non-existing key")
	}

	appError.Context = nil
	if _, exists = appError.GetContext("field"); exists {
		t.Errorf("GetContext should return false when context is nil")
	}
}
