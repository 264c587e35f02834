package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeStore represents storage-layer errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeNotFound represents missing-entity errors
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeClassifier represents external classifier errors
	ErrorTypeClassifier ErrorType = "classifier"
	// ErrorTypeInput represents invalid caller input
	ErrorTypeInput ErrorType = "input"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Not-found errors

// ErrNotFound is returned when a referenced User, Element or Action does
// not exist in its collection.
type ErrNotFound struct {
	*BaseError
	Kind string
	ID   string
}

func NewNotFound(kind, id string) *ErrNotFound {
	return &ErrNotFound{
		BaseError: NewBaseError(ErrorTypeNotFound, fmt.Sprintf("%s not found: %s", kind, id), nil),
		Kind:      kind,
		ID:        id,
	}
}

// IsNotFound reports whether err (or anything it wraps) is an ErrNotFound
func IsNotFound(err error) bool {
	var nf *ErrNotFound
	return errors.As(err, &nf)
}

// Classifier errors

// ErrClassifierFailed is returned when the external classification call
// fails or times out. Action creation has no fallback classification, so
// this aborts the whole operation.
type ErrClassifierFailed struct {
	*BaseError
	Model    string
	TimedOut bool
}

func NewClassifierFailed(model string, timedOut bool, err error) *ErrClassifierFailed {
	msg := "classification request failed"
	if timedOut {
		msg = "classification request timed out"
	}
	return &ErrClassifierFailed{
		BaseError: NewBaseError(ErrorTypeClassifier, msg, err),
		Model:     model,
		TimedOut:  timedOut,
	}
}

// IsClassifierFailure reports whether err is an ErrClassifierFailed
func IsClassifierFailure(err error) bool {
	var cf *ErrClassifierFailed
	return errors.As(err, &cf)
}

// Input errors

// ErrInvalidInput is returned for caller input the core rejects before
// touching storage.
type ErrInvalidInput struct {
	*BaseError
	Field  string
	Reason string
}

func NewInvalidInput(field, reason string) *ErrInvalidInput {
	return &ErrInvalidInput{
		BaseError: NewBaseError(ErrorTypeInput, fmt.Sprintf("invalid %s: %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// IsInvalidInput reports whether err is an ErrInvalidInput
func IsInvalidInput(err error) bool {
	var ii *ErrInvalidInput
	return errors.As(err, &ii)
}

// Store errors

// ErrStoreFailed is returned when a collection could not be loaded or
// persisted.
type ErrStoreFailed struct {
	*BaseError
	Collection string
	Op         string
}

func NewStoreFailed(collection, op string, err error) *ErrStoreFailed {
	return &ErrStoreFailed{
		BaseError:  NewBaseError(ErrorTypeStore, fmt.Sprintf("%s %s failed", collection, op), err),
		Collection: collection,
		Op:         op,
	}
}

// Config errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	var base *BaseError
	if errors.As(err, &base) {
		return base.Type == errType
	}
	return false
}
