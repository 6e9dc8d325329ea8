package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testValues = Values{ModuleName: "scoring", PythonVersion: "3.9"}

// =============================================================================
// Substitute Tests
// =============================================================================

func TestSubstitute_Dockerfile(t *testing.T) {
	raw := "FROM python:<<PYTHON_VERSION>>-slim\nCOPY <<MODULE_NAME>> /app/<<MODULE_NAME>>\n"
	result := Substitute(raw, testValues)
	assert.Equal(t, "FROM python:3.9-slim\nCOPY scoring /app/scoring\n", result)
}

func TestSubstitute_AllOccurrences(t *testing.T) {
	result := Substitute("<<PYTHON_VERSION>> <<PYTHON_VERSION>> <<PYTHON_VERSION>>", testValues)
	assert.Equal(t, "3.9 3.9 3.9", result)
}

func TestSubstitute_NoPlaceholders(t *testing.T) {
	result := Substitute("plain text", testValues)
	assert.Equal(t, "plain text", result)
}

func TestSubstitute_EmptyString(t *testing.T) {
	assert.Equal(t, "", Substitute("", testValues))
}

func TestSubstitute_NoEscaping(t *testing.T) {
	result := Substitute(`name: "<<MODULE_NAME>>"`, Values{ModuleName: `a"b`})
	assert.Equal(t, `name: "a"b"`, result)
}

func TestSubstitute_UnknownTokenKept(t *testing.T) {
	result := Substitute("<<OTHER>> <<MODULE_NAME>>", testValues)
	assert.Equal(t, "<<OTHER>> scoring", result)
}

func TestSubstitute_PartialTokenKept(t *testing.T) {
	result := Substitute("<<MODULE_NAME> <PYTHON_VERSION>>", testValues)
	assert.Equal(t, "<<MODULE_NAME> <PYTHON_VERSION>>", result)
}

// =============================================================================
// Tokens Tests
// =============================================================================

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{TokenModuleName, TokenPythonVersion}, Tokens("<<PYTHON_VERSION>> <<MODULE_NAME>>"))
	assert.Equal(t, []string{TokenPythonVersion}, Tokens("python-version: <<PYTHON_VERSION>>"))
	assert.Nil(t, Tokens("nothing"))
}
