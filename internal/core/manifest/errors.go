package manifest

import "errors"

var (
	// ErrMissingFrameworkVersion is returned when torch is detected but no version was given.
	ErrMissingFrameworkVersion = errors.New("torch version is required for torch projects")

	// ErrMissingPackageName is returned when Build is called without a package name.
	ErrMissingPackageName = errors.New("package name is required")
)
