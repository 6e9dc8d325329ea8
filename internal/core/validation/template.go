package validation

import "regexp"

// =============================================================================
// Template Validation Functions
// =============================================================================

// placeholderPattern matches anything shaped like a template token.
var placeholderPattern = regexp.MustCompile(`<<[A-Z][A-Z0-9_]*>>`)

// ValidateTemplateFields validates the template source paths.
// Returns the field name and error message if validation fails.
// Returns empty strings if all fields are valid.
//
// Example:
//
//	field, msg := ValidateTemplateFields("./Dockerfile", "./run-tests.yml")
//	if field != "" {
//	    // Handle validation error
//	}
func ValidateTemplateFields(dockerfileTemplate, workflowTemplate string) (field, message string) {
	if dockerfileTemplate == "" {
		return "templates.dockerfile", "dockerfile template is required"
	}
	if workflowTemplate == "" {
		return "templates.workflow", "workflow template is required"
	}
	return "", ""
}

// CanDeleteRequirements checks if the legacy requirement files may be removed.
// Preview runs never remove anything.
// Returns whether deletion is allowed and an optional reason if not.
//
// Example:
//
//	allowed, reason := CanDeleteRequirements(opts.Preview)
//	if !allowed {
//	    // Keep the files and log reason
//	}
func CanDeleteRequirements(preview bool) (allowed bool, reason string) {
	if preview {
		return false, "preview runs keep requirement files"
	}
	return true, ""
}

// UnresolvedPlaceholders returns the distinct <<TOKEN>> markers still present
// in rendered output, in order of first appearance. A template that uses a
// misspelled token ends up here because substitution leaves it alone.
//
// Example:
//
//	UnresolvedPlaceholders("FROM python:3.9\nCOPY <<MODULE>> /app")
//	// Returns: []string{"<<MODULE>>"}
func UnresolvedPlaceholders(rendered string) []string {
	var found []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllString(rendered, -1) {
		if seen[m] {
			continue
		}
		seen[m] = true
		found = append(found, m)
	}
	return found
}
