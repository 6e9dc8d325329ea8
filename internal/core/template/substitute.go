package template

import "strings"

// =============================================================================
// Placeholder Tokens
// =============================================================================

const (
	// TokenModuleName is replaced with the detected package name.
	TokenModuleName = "<<MODULE_NAME>>"
	// TokenPythonVersion is replaced with the interpreter version.
	TokenPythonVersion = "<<PYTHON_VERSION>>"
)

// Values are the resolved replacements for the placeholder tokens.
type Values struct {
	ModuleName    string
	PythonVersion string
}

// =============================================================================
// Substitution Functions
// =============================================================================

// Substitute replaces every occurrence of the placeholder tokens with values.
//
// Behavior:
//   - <<MODULE_NAME>> - replaced with values.ModuleName
//   - <<PYTHON_VERSION>> - replaced with values.PythonVersion
//   - Replacement is literal: no escaping, no check that a token is present
//
// Examples:
//
//	Substitute("FROM python:<<PYTHON_VERSION>>-slim", Values{PythonVersion: "3.9"})
//	// Returns: "FROM python:3.9-slim"
//
//	Substitute("COPY <<MODULE_NAME>> /app/<<MODULE_NAME>>", Values{ModuleName: "scoring"})
//	// Returns: "COPY scoring /app/scoring"
//
//	Substitute("no tokens here", Values{ModuleName: "scoring"})
//	// Returns: "no tokens here"
func Substitute(content string, values Values) string {
	content = strings.ReplaceAll(content, TokenModuleName, values.ModuleName)
	content = strings.ReplaceAll(content, TokenPythonVersion, values.PythonVersion)
	return content
}

// Tokens returns the placeholder tokens present in content, in a fixed order.
func Tokens(content string) []string {
	var found []string
	for _, tok := range []string{TokenModuleName, TokenPythonVersion} {
		if strings.Contains(content, tok) {
			found = append(found, tok)
		}
	}
	return found
}
