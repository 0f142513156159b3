package domain

import (
	"fmt"
)

// Error codes for different failure scenarios
const (
	ErrValidation   = "VALIDATION_ERROR"
	ErrCalculation  = "CALCULATION_ERROR"
	ErrUnknownScore = "UNKNOWN_SCORE"
	ErrInternal     = "INTERNAL_ERROR"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// CalculationError represents a domain violation raised by a calculator after
// field-level validation has passed (e.g. a contradictory parameter combination).
type CalculationError struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *CalculationError) Error() string {
	return e.Message
}

// NewCalculationError creates a new CalculationError
func NewCalculationError(format string, args ...interface{}) *CalculationError {
	return &CalculationError{Message: fmt.Sprintf(format, args...)}
}

// UnknownScoreError is returned when a score identifier has no registered calculator
type UnknownScoreError struct {
	ScoreID string `json:"score_id"`
}

// Error implements the error interface
func (e *UnknownScoreError) Error() string {
	return fmt.Sprintf("unknown score: %s", e.ScoreID)
}
