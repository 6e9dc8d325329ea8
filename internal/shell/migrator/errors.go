package migrator

import "fmt"

// =============================================================================
// Error Types
// =============================================================================

// Stage names a step of the migration pipeline.
type Stage string

const (
	StageLocate     Stage = "locate"
	StageRead       Stage = "read"
	StageManifest   Stage = "manifest"
	StageCleanup    Stage = "cleanup"
	StageDockerfile Stage = "dockerfile"
	StageWorkflow   Stage = "workflow"
)

// StageError wraps errors with the stage and file they happened in.
// Earlier stages are not undone when a later stage fails.
type StageError struct {
	Stage Stage
	Path  string // File involved, if any
	Err   error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, path string, err error) *StageError {
	return &StageError{Stage: stage, Path: path, Err: err}
}
