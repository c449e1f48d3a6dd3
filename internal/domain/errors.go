// Package domain defines the core types and errors for univariate analysis runs.
package domain

import "fmt"

// InputError indicates the input file is missing, unreadable, or not a table.
// It is always fatal and is raised before any output is written.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidationError indicates invalid configuration or flag values.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrInput wraps err as an InputError for path.
func ErrInput(path string, err error) *InputError {
	return &InputError{Path: path, Err: err}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
