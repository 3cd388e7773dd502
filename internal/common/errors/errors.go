// Package errors provides the standardized error taxonomy of the consolidator.
// Every error in this taxonomy is fatal: nothing is retried or downgraded.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeFileNotFound   ErrorCode = "FILE_NOT_FOUND"
	ErrCodeFileReadFailed ErrorCode = "FILE_READ_FAILED"
	ErrCodeParseError     ErrorCode = "PARSE_ERROR"

	ErrCodeFieldMissing   ErrorCode = "FIELD_MISSING"
	ErrCodeTypeConversion ErrorCode = "TYPE_CONVERSION"
	ErrCodeIndexError     ErrorCode = "INDEX_ERROR"

	ErrCodeSerializationFailed ErrorCode = "SERIALIZATION_FAILED"
	ErrCodeWriteFailed         ErrorCode = "WRITE_FAILED"
	ErrCodeVerificationFailed  ErrorCode = "VERIFICATION_FAILED"

	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("StandardError[%s]: %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

func newError(code ErrorCode, message, details string, cause error, metadata map[string]interface{}) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: false,
		Metadata:  metadata,
		Timestamp: time.Now().UTC(),
		cause:     cause,
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewFileNotFoundError reports a missing input file.
func NewFileNotFoundError(path string, err error) *StandardError {
	return newError(ErrCodeFileNotFound, "Input file not found", fmt.Sprintf("path: %s", path), err,
		map[string]interface{}{"path": path})
}

func NewFileReadFailedError(path string, err error) *StandardError {
	return newError(ErrCodeFileReadFailed, "Failed to read input file",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), err,
		map[string]interface{}{"path": path})
}

// NewParseError reports a document that is not valid JSON or not an array of objects.
func NewParseError(path, details string, err error) *StandardError {
	return newError(ErrCodeParseError, "Input document could not be parsed",
		fmt.Sprintf("path: %s, %s", path, details), err,
		map[string]interface{}{"path": path})
}

// NewFieldMissingError reports a required key absent from a source record.
func NewFieldMissingError(collection string, index int, field string) *StandardError {
	return newError(ErrCodeFieldMissing, "Required field missing from source record",
		fmt.Sprintf("collection: %s, index: %d, field: %s", collection, index, field), nil,
		map[string]interface{}{"collection": collection, "index": index, "field": field})
}

// NewTypeConversionError reports an id value that does not convert to an integer.
func NewTypeConversionError(collection string, index int, field string, value interface{}, err error) *StandardError {
	return newError(ErrCodeTypeConversion, "Field value does not convert to an integer",
		fmt.Sprintf("collection: %s, index: %d, field: %s, value: %v", collection, index, field, value), err,
		map[string]interface{}{"collection": collection, "index": index, "field": field})
}

// NewIndexError reports sampling from an empty collection.
func NewIndexError(collection string) *StandardError {
	return newError(ErrCodeIndexError, "List index out of range",
		fmt.Sprintf("collection: %s is empty", collection), nil,
		map[string]interface{}{"collection": collection})
}

func NewSerializationFailedError(err error) *StandardError {
	return newError(ErrCodeSerializationFailed, "Failed to encode administrative data", err.Error(), err, nil)
}

func NewWriteFailedError(path string, err error) *StandardError {
	return newError(ErrCodeWriteFailed, "Failed to write output file",
		fmt.Sprintf("path: %s, error: %s", path, err.Error()), err,
		map[string]interface{}{"path": path})
}

// NewVerificationFailedError reports emitted files that disagree with each other.
func NewVerificationFailedError(details string) *StandardError {
	return newError(ErrCodeVerificationFailed, "Emitted outputs are inconsistent", details, nil, nil)
}

func NewConfigInvalidError(details string, err error) *StandardError {
	return newError(ErrCodeConfigInvalid, "Invalid configuration", details, err, nil)
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandardError normalizes any error into a StandardError.
func AsStandardError(err error) *StandardError {
	if err == nil {
		return nil
	}
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return newError(ErrCodeInternal, "Unexpected error", err.Error(), err, nil)
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "FILE") || code == ErrCodeParseError:
		return "INPUT"
	case code == ErrCodeFieldMissing || code == ErrCodeTypeConversion:
		return "TRANSFORM"
	case code == ErrCodeIndexError:
		return "REPORT"
	case code == ErrCodeSerializationFailed || code == ErrCodeWriteFailed || code == ErrCodeVerificationFailed:
		return "OUTPUT"
	case strings.HasPrefix(codeStr, "CONFIG"):
		return "CONFIG"
	default:
		return "OTHER"
	}
}

// ExitCode maps an error to a process exit status. A nil error exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCategory(AsStandardError(err).Code) {
	case "CONFIG":
		return 2
	case "INPUT":
		return 3
	case "TRANSFORM":
		return 4
	case "REPORT":
		return 5
	case "OUTPUT":
		return 6
	default:
		return 1
	}
}
