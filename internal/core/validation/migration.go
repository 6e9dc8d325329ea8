package validation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Option Validation Functions
// =============================================================================

// ValidateMigrationFields validates required option values.
// Returns the field name and error message if validation fails.
// Returns empty strings if all fields are valid.
//
// Example:
//
//	field, msg := ValidateMigrationFields("./service", "3.9", "pyproject.toml")
//	if field != "" {
//	    // Handle validation error
//	}
func ValidateMigrationFields(projectRoot, pythonVersion, manifestPath string) (field, message string) {
	if projectRoot == "" {
		return "project_root", "project root is required"
	}
	if pythonVersion == "" {
		return "python.version", "python version is required"
	}
	if manifestPath == "" {
		return "manifest.path", "manifest path is required"
	}
	return "", ""
}

// =============================================================================
// Workflow Validation Functions
// =============================================================================

// ValidateWorkflow checks that a rendered GitHub Actions workflow parses as a
// YAML mapping with a "jobs" key. Returns an empty message when it does.
// Callers treat a non-empty message as a warning, never as a failure.
//
// Example:
//
//	if msg := ValidateWorkflow(rendered); msg != "" {
//	    logger.Warn("rendered workflow looks wrong", "reason", msg)
//	}
func ValidateWorkflow(content string) (message string) {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Sprintf("invalid YAML: %v", err)
	}
	if doc == nil {
		return "workflow is empty"
	}
	if _, ok := doc["jobs"]; !ok {
		return "workflow has no jobs"
	}
	return ""
}
