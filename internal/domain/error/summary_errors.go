// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Summary domain errors.
var (
	// ErrSummaryNotFound is returned when no summary exists for a (user, year, month).
	ErrSummaryNotFound = errors.New("summary not found")

	// ErrInvalidMonth is returned when the month is outside the range 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year cannot be parsed.
	ErrInvalidYear = errors.New("invalid year")
)

// SummaryErrorCode defines error codes for summary errors.
type SummaryErrorCode string

const (
	ErrCodeSummaryNotFound SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidMonth    SummaryErrorCode = "SUM-010002"
	ErrCodeInvalidYear     SummaryErrorCode = "SUM-010003"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
