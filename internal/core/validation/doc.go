// Package validation provides pure validation functions for migration inputs and outputs.
//
// This package contains the functional core logic for checking the CLI
// options before a run and sanity-checking rendered artifacts. All functions
// are pure (no I/O, no side effects).
//
// # Functions
//
//   - ValidateMigrationFields: Validate required option values
//   - ValidateTemplateFields: Validate the template source paths
//   - CanDeleteRequirements: Check whether legacy requirement files may be removed
//   - ValidateWorkflow: Check that a rendered CI workflow is a YAML mapping with jobs
//   - UnresolvedPlaceholders: List <<TOKEN>> markers left after substitution
//
// # Usage
//
// The CLI validates options before building the migrator, and the migrator
// logs a warning when a rendered workflow does not look like a workflow:
//
//	if field, msg := validation.ValidateMigrationFields(root, pythonVersion, manifestPath); field != "" {
//	    // Exit with a configuration error
//	}
package validation
