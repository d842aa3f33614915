// Package errors provides standardized error handling for the training
// pipeline and the recommendation service.
package errors

import (
	"errors"
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
	ErrCodeNoAdmissionFiles ErrorCode = "NO_ADMISSION_FILES"
	ErrCodeFileParseFailed  ErrorCode = "FILE_PARSE_FAILED"
	ErrCodeNoTrainingData   ErrorCode = "NO_TRAINING_DATA"

	ErrCodeModelNotFound         ErrorCode = "MODEL_NOT_FOUND"
	ErrCodeModelValidationFailed ErrorCode = "MODEL_VALIDATION_FAILED"
	ErrCodeModelSaveFailed       ErrorCode = "MODEL_SAVE_FAILED"
	ErrCodeModelLoadFailed       ErrorCode = "MODEL_LOAD_FAILED"

	ErrCodeInvalidQueryInput ErrorCode = "INVALID_QUERY_INPUT"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeCacheUnavailable         ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewNoAdmissionFilesError is returned when the data directory yields no
// usable admission files at all.
func NewNoAdmissionFilesError(dir string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoAdmissionFiles,
		Message:   "No admission data files found",
		Details:   fmt.Sprintf("dataDir: %s", dir),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileParseFailedError wraps a single-file parse failure. The trainer
// logs these and moves on to the next file.
func NewFileParseFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileParseFailed,
		Message:   "Failed to parse admission data file",
		Details:   fmt.Sprintf("file: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoTrainingDataError is returned when files were found but every record
// was rejected during ingestion.
func NewNoTrainingDataError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoTrainingData,
		Message:   "No usable admission records after ingestion",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelNotFoundError creates a non-retryable missing-model error.
func NewModelNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelNotFound,
		Message:   "Trained model not found",
		Details:   fmt.Sprintf("path: %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelValidationFailedError creates a non-retryable model schema error.
func NewModelValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelValidationFailed,
		Message:   "Model document failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelSaveFailedError creates a retryable model persistence error.
func NewModelSaveFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelSaveFailed,
		Message:   "Failed to persist trained model",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelLoadFailedError creates a non-retryable model read error.
func NewModelLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelLoadFailed,
		Message:   "Failed to load trained model",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidQueryInputError creates a non-retryable query validation error.
func NewInvalidQueryInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidQueryInput,
		Message:   "Invalid recommendation query input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(query string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", query, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error. Callers treat
// the cache as best effort and fall through to the model on this error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Response cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the ErrorCode from err if it is a StandardError.
func CodeOf(err error) (ErrorCode, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code, true
	}
	return "", false
}

// IsRetryable checks whether err is a retryable StandardError.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	return errors.As(err, &stdErr) && stdErr.Retryable
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "MODEL"):
		return "MODEL"
	case strings.Contains(codeStr, "FILE") || strings.Contains(codeStr, "TRAINING"):
		return "INGEST"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY_EXECUTION"):
		return "DATABASE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
