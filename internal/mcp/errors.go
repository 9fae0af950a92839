package mcp

import (
	"errors"
	"fmt"

	"hrboard/internal/domain/tracker"
	"hrboard/internal/sheet"
)

// ErrConfirmRequired indicates a destructive tool was called without
// confirm: true. State is never touched in that case.
var ErrConfirmRequired = errors.New("confirmation required")

// APIError represents a tool error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to stable API error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, tracker.ErrEmptyActivity):
		return &APIError{Code: "VALIDATION_ERROR", Message: "activity is required", RecoveryHint: "Provide a non-empty activity"}
	case errors.Is(err, tracker.ErrInvalidDate):
		return &APIError{Code: "VALIDATION_ERROR", Message: "target date is not a valid YYYY-MM-DD date", RecoveryHint: "Use a real calendar date like 2026-03-31"}
	case errors.Is(err, tracker.ErrRecordNotFound):
		return &APIError{Code: "NOT_FOUND", Message: "record not found", RecoveryHint: "Check the id with list_updates"}
	case errors.Is(err, tracker.ErrEmptyImport), errors.Is(err, sheet.ErrNoRows):
		return &APIError{Code: "IMPORT_EMPTY", Message: "no rows with a non-empty activity to import", RecoveryHint: "Check the Activity column of the file"}
	case errors.Is(err, ErrConfirmRequired):
		return &APIError{Code: "CONFIRM_REQUIRED", Message: "destructive operation needs confirm: true", RecoveryHint: "Retry with confirm set to true"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
