// Package errors provides custom error types for the keybindings merge engine.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the module.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the merge engine
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrParseFailed indicates that input text could not be parsed
	ErrParseFailed = errors.New("parse failed")

	// ErrInternal indicates a programming defect (a broken invariant),
	// not a condition callers are expected to recover from
	ErrInternal = errors.New("internal invariant violation")
)

// ParseError represents an error when parsing keybindings or expression text.
type ParseError struct {
	Format  string // "jsonc", "when-clause", "yaml"
	File    string // optional file the content came from
	Offset  int    // byte offset of the failure, -1 when unknown
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Offset >= 0 {
		return fmt.Sprintf("parse error in %s file %s at offset %d: %s", e.Format, e.File, e.Offset, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s parse error at offset %d: %s", e.Format, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailed
}

// NewParseError creates a new ParseError
func NewParseError(format, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Offset:  -1,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// InternalError represents a broken invariant inside the engine, for example
// a grouping key reported as updated that is missing from a source grouping.
type InternalError struct {
	Component string
	Message   string
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("internal error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

// Is implements errors.Is support
func (e *InternalError) Is(target error) bool {
	return target == ErrInternal
}

// NewInternalError creates a new InternalError
func NewInternalError(component, message string) *InternalError {
	return &InternalError{Component: component, Message: message}
}

// IsParseError checks if an error indicates unparseable input
func IsParseError(err error) bool {
	return errors.Is(err, ErrParseFailed)
}

// IsInvalidInput checks if an error indicates invalid input
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInternal checks if an error indicates a broken internal invariant
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As
