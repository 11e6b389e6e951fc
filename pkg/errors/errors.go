// Package errors holds the typed errors reported for builder configuration
// files.
package errors

import (
	"fmt"
)

// ParseError reports a config file that could not be read or decoded as
// YAML. Line is 0 when the decoder did not name one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps a read or decode failure for the config file at path.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("config file %s, line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("config file %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a builder option that failed its schema check.
// Field uses the YAML spelling (sizes, log.level). Path is set when the
// options came from a file rather than flags.
type ValidationError struct {
	Path    string
	Field   string
	Message string
	Err     error
}

// NewValidationError reports message against the option field.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	subject := "builder option"
	if e.Field != "" {
		subject = fmt.Sprintf("builder option %q", e.Field)
	}
	if e.Path != "" {
		return fmt.Sprintf("invalid %s in %s: %s", subject, e.Path, e.Message)
	}
	return fmt.Sprintf("invalid %s: %s", subject, e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
