// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Statement import domain errors.
var (
	// ErrInvalidStatementContent is returned when the uploaded content cannot be decoded.
	ErrInvalidStatementContent = errors.New("invalid statement content")

	// ErrNoTransactionsExtracted is returned when the importer finds no candidate
	// transactions in the statement text.
	ErrNoTransactionsExtracted = errors.New("no transactions extracted from statement")
)

// StatementErrorCode defines error codes for statement import errors.
type StatementErrorCode string

const (
	ErrCodeInvalidStatementContent StatementErrorCode = "STM-010001"
	ErrCodeNoTransactionsExtracted StatementErrorCode = "STM-010002"
)

// StatementError represents a statement import error with code and message.
type StatementError struct {
	Code    StatementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StatementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StatementError) Unwrap() error {
	return e.Err
}

// NewStatementError creates a new StatementError.
func NewStatementError(code StatementErrorCode, message string, err error) *StatementError {
	return &StatementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
