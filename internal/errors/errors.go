// Package errors provides centralized error definitions and error handling utilities
// for fretsmart. It defines the error taxonomy of the data pipeline, semantic
// sentinels, error constructors with context, and classification helpers.
//
// # Error Types
//
// Each stage of the pipeline has its own error type:
//   - FormatError: a data file line does not match any recognized record shape
//   - NotFoundError: the selection could not be satisfied by the data file
//   - InvalidNoteError: a requested root note is absent from the note scale
//   - NumberError: a numeric field could not be parsed (strict mode only)
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewFormatError("X,foo", "unknown tag").WithLine(3)
//	err := errors.NewNotFoundError("data.txt").WithField("instrument", "banjo")
//	err := errors.NewInvalidNoteError("tuning-note", "H")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrFormat) { ... }
//
//	var notFound *errors.NotFoundError
//	if errors.As(err, &notFound) { ... }
//
//	if errors.IsDataError(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrFormat indicates that a data line has an unrecognized shape.
	ErrFormat = New("invalid row")
	// ErrNotFound indicates that the selection did not match the data file.
	ErrNotFound = New("selection not found")
	// ErrCorruptData indicates that the data file lacks a required record.
	ErrCorruptData = New("data file is corrupt")
	// ErrInvalidNote indicates that a root note is not part of the note scale.
	ErrInvalidNote = New("invalid note")
	// ErrInvalidNumber indicates that a numeric field could not be parsed.
	ErrInvalidNumber = New("invalid number")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// FretsmartError is the base interface for all fretsmart errors.
type FretsmartError interface {
	error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity
}

// baseError provides common functionality for all error types.
type baseError struct {
	message  string
	severity Severity
}

// Error returns the error message.
func (e *baseError) Error() string {
	return e.message
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// -----------------------------------------------------------------------------
// Pipeline Errors
// -----------------------------------------------------------------------------

// FormatError represents a data line that is not one of the four record shapes.
// It is fatal for the scan that produced it.
//
// Example:
//
//	err := errors.NewFormatError("Q,1,2", "unknown tag \"Q\"").WithLine(7)
//	fmt.Println(err) // "invalid row [line=7]: unknown tag "Q" - Q,1,2"
type FormatError struct {
	baseError
	Line       string
	LineNumber int
}

// NewFormatError creates a new FormatError for the given raw line.
func NewFormatError(line, reason string) *FormatError {
	return &FormatError{
		baseError: baseError{
			message:  reason,
			severity: SeverityError,
		},
		Line: line,
	}
}

// WithLine records the 1-based line number of the offending line.
func (e *FormatError) WithLine(n int) *FormatError {
	e.LineNumber = n
	return e
}

// Reason returns the description of what is wrong with the line.
func (e *FormatError) Reason() string {
	return e.message
}

// Error returns the formatted error message.
func (e *FormatError) Error() string {
	prefix := ErrFormat.Error()
	if e.LineNumber > 0 {
		prefix = fmt.Sprintf("%s [line=%d]", prefix, e.LineNumber)
	}
	if e.message != "" {
		prefix = fmt.Sprintf("%s: %s", prefix, e.message)
	}
	return fmt.Sprintf("%s - %s", prefix, e.Line)
}

// Is checks if this error matches the target.
func (e *FormatError) Is(target error) bool {
	if _, ok := target.(*FormatError); ok {
		return true
	}
	if target == ErrFormat {
		return true
	}
	return false
}

// Field is one selection criterion, by its option name and requested value.
type Field struct {
	Name  string
	Value string
}

// String renders the field as name=value.
func (f Field) String() string {
	return f.Name + "=" + f.Value
}

// NotFoundError represents a selection that the data file could not satisfy.
//
// Example:
//
//	err := errors.NewNotFoundError("data.txt").WithField("instrument", "banjo")
//	fmt.Println(err) // "the given arguments were not found in 'data.txt' - instrument=banjo"
type NotFoundError struct {
	baseError
	Source  string
	Fields  []Field
	Corrupt bool
}

// NewNotFoundError creates a new NotFoundError for the named data source.
func NewNotFoundError(source string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:  "the given arguments were not found",
			severity: SeverityWarning,
		},
		Source: source,
	}
}

// WithField appends an unsatisfied selection criterion.
func (e *NotFoundError) WithField(name, value string) *NotFoundError {
	e.Fields = append(e.Fields, Field{Name: name, Value: value})
	return e
}

// WithCorrupt marks the error as a corrupt data condition: a record every
// valid data file must define is absent.
func (e *NotFoundError) WithCorrupt(what string) *NotFoundError {
	e.Corrupt = true
	e.severity = SeverityError
	e.Fields = append(e.Fields, Field{Name: what, Value: "missing"})
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	prefix := e.message
	if e.Source != "" {
		prefix = fmt.Sprintf("%s in '%s'", prefix, e.Source)
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	detail := strings.Join(parts, ", ")
	if e.Corrupt {
		detail += " (" + ErrCorruptData.Error() + ")"
	}
	return fmt.Sprintf("%s - %s", prefix, detail)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if target == ErrNotFound {
		return true
	}
	if e.Corrupt && target == ErrCorruptData {
		return true
	}
	return false
}

// InvalidNoteError represents a root note that is not part of the note scale.
//
// Example:
//
//	err := errors.NewInvalidNoteError("tuning-note", "H")
//	fmt.Println(err) // "invalid tuning-note - H"
type InvalidNoteError struct {
	baseError
	Role string
	Note string
}

// NewInvalidNoteError creates a new InvalidNoteError.
func NewInvalidNoteError(role, note string) *InvalidNoteError {
	return &InvalidNoteError{
		baseError: baseError{
			message:  ErrInvalidNote.Error(),
			severity: SeverityWarning,
		},
		Role: role,
		Note: note,
	}
}

// Error returns the formatted error message.
func (e *InvalidNoteError) Error() string {
	return fmt.Sprintf("invalid %s - %s", e.Role, e.Note)
}

// Is checks if this error matches the target.
func (e *InvalidNoteError) Is(target error) bool {
	if _, ok := target.(*InvalidNoteError); ok {
		return true
	}
	if target == ErrInvalidNote {
		return true
	}
	return false
}

// NumberError represents an offset or interval field that is not a
// non-negative integer.
//
// Example:
//
//	err := errors.NewNumberError("tuning", "std", 2, "x")
//	fmt.Println(err) // "invalid number in tuning 'std' at position 2: "x""
type NumberError struct {
	baseError
	Record   string
	Name     string
	Position int
	Value    string
}

// NewNumberError creates a new NumberError. Position is 0-based.
func NewNumberError(record, name string, position int, value string) *NumberError {
	return &NumberError{
		baseError: baseError{
			message:  ErrInvalidNumber.Error(),
			severity: SeverityError,
		},
		Record:   record,
		Name:     name,
		Position: position,
		Value:    value,
	}
}

// Error returns the formatted error message.
func (e *NumberError) Error() string {
	return fmt.Sprintf("%s in %s '%s' at position %d: %q", e.message, e.Record, e.Name, e.Position, e.Value)
}

// Is checks if this error matches the target.
func (e *NumberError) Is(target error) bool {
	if _, ok := target.(*NumberError); ok {
		return true
	}
	if target == ErrInvalidNumber {
		return true
	}
	return false
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsDataError returns true if the error originates from the data pipeline
// (FormatError, NotFoundError, InvalidNoteError or NumberError).
func IsDataError(err error) bool {
	if err == nil {
		return false
	}

	var fretsmartErr FretsmartError
	return As(err, &fretsmartErr)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike fmt.Errorf with %w, this returns nil for a nil error.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to open data file")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to read %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
