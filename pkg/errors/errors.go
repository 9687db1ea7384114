// Package errors provides custom error types for the fcc-db system.
// These errors enable programmatic error checking and carry the offending
// input in the diagnostic, which matters when a bad upstream extract has
// to be reported rather than repaired.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the fcc-db system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrBadRecord indicates a record that does not match its schema
	ErrBadRecord = errors.New("malformed record")

	// ErrBadDate indicates a date field that is not in the expected layout
	ErrBadDate = errors.New("malformed date")

	// ErrMissingKey indicates a record referencing an identifier with no
	// merged entry
	ErrMissingKey = errors.New("unknown identifier")

	// ErrMismatch indicates a cross-source callsign disagreement
	ErrMismatch = errors.New("callsign mismatch")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// RecordError represents a record whose text does not satisfy its schema:
// an empty line, or a field count different from what the schema demands.
// The raw line is kept so the diagnostic can show exactly what arrived.
type RecordError struct {
	File     string // source file, when known
	Line     string // offending raw text
	Expected int    // fields the schema demands
	Found    int    // fields actually present
	Message  string
}

// Error implements the error interface
func (e *RecordError) Error() string {
	if e.Expected > 0 {
		return fmt.Sprintf("malformed record: %s; should be %d fields; found %d: %q", e.Message, e.Expected, e.Found, e.Line)
	}
	return fmt.Sprintf("malformed record: %s", e.Message)
}

// Is implements errors.Is support
func (e *RecordError) Is(target error) bool {
	return target == ErrBadRecord
}

// DateError represents a date value that is not the fixed 10-character
// MM/DD/YYYY layout the upstream extracts use.
type DateError struct {
	Value string
}

// Error implements the error interface
func (e *DateError) Error() string {
	return fmt.Sprintf("malformed date %q: expected 10 characters, found %d", e.Value, len(e.Value))
}

// Is implements errors.Is support
func (e *DateError) Is(target error) bool {
	return target == ErrBadDate
}

// NewDateError creates a new DateError
func NewDateError(value string) *DateError {
	return &DateError{Value: value}
}

// JoinError represents a record whose identifier has no merged entry when
// the source kind requires one to exist.
type JoinError struct {
	Kind string // source kind, e.g. "CO"
	Key  string // the identifier that failed to resolve
}

// Error implements the error interface
func (e *JoinError) Error() string {
	return fmt.Sprintf("%s record references unknown identifier %s", e.Kind, e.Key)
}

// Is implements errors.Is support
func (e *JoinError) Is(target error) bool {
	return target == ErrMissingKey
}

// NewJoinError creates a new JoinError
func NewJoinError(kind, key string) *JoinError {
	return &JoinError{Kind: kind, Key: key}
}

// CallsignError represents a cross-source callsign disagreement for one
// identifier. Both values are kept so the diagnostic shows the conflict.
type CallsignError struct {
	Kind     string // source kind of the incoming record
	Key      string // the shared identifier
	Incoming string // callsign carried by the incoming record
	Stored   string // callsign already held by the merged entry
}

// Error implements the error interface
func (e *CallsignError) Error() string {
	return fmt.Sprintf("%s callsign %q does not match stored callsign %q for identifier %s", e.Kind, e.Incoming, e.Stored, e.Key)
}

// Is implements errors.Is support
func (e *CallsignError) Is(target error) bool {
	return target == ErrMismatch
}

// NewCallsignError creates a new CallsignError
func NewCallsignError(kind, key, incoming, stored string) *CallsignError {
	return &CallsignError{Kind: kind, Key: key, Incoming: incoming, Stored: stored}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "dat", "yaml", "date"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open", "stat"
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

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadRecord checks if an error is a record format error
func IsBadRecord(err error) bool {
	return errors.Is(err, ErrBadRecord)
}

// IsBadDate checks if an error is a date format error
func IsBadDate(err error) bool {
	return errors.Is(err, ErrBadDate)
}

// IsMissingKey checks if an error is a missing join target error
func IsMissingKey(err error) bool {
	return errors.Is(err, ErrMissingKey)
}

// IsMismatch checks if an error is a callsign mismatch error
func IsMismatch(err error) bool {
	return errors.Is(err, ErrMismatch)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
