// Package project locates the pieces of a legacy Python project on disk.
package project

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrPackageNotFound is returned when no subdirectory qualifies as the package.
	ErrPackageNotFound = errors.New("failed to find package directory with __init__.py file")

	// ErrRootNotDirectory is returned when the project root is missing or a file.
	ErrRootNotDirectory = errors.New("project root is not a directory")
)

// ProjectError wraps errors with additional context.
type ProjectError struct {
	Op      string // Operation that failed (e.g., "Locate")
	Path    string
	Message string
	Err     error
}

func (e *ProjectError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ProjectError) Unwrap() error {
	return e.Err
}

// NewProjectError creates a new ProjectError.
func NewProjectError(op, path, message string, err error) *ProjectError {
	return &ProjectError{
		Op:      op,
		Path:    path,
		Message: message,
		Err:     err,
	}
}
