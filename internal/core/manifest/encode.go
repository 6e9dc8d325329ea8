package manifest

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/artpar/pymigrate/internal/core/requirements"
)

// =============================================================================
// TOML Encoding
// =============================================================================

const (
	poetryTable          = "tool.poetry"
	dependenciesTable    = "tool.poetry.dependencies"
	devDependenciesTable = "tool.poetry.dev-dependencies"
	sourceArrayTable     = "tool.poetry.source"
)

// header holds the scalar keys of [tool.poetry] in output order.
type header struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Description string   `toml:"description"`
	Authors     []string `toml:"authors"`
}

// Encode renders the manifest as a pyproject.toml document.
// Dependency tables keep insertion order; non-plain constraints are written
// as inline tables.
//
// Output shape:
//
//	[tool.poetry]
//	name = 'pkg'
//	...
//
//	[tool.poetry.dependencies]
//	python = '^3.9'
//	torch = {version = '^2.0.0+cpu', source = 'pytorch-cpu'}
//
//	[tool.poetry.dev-dependencies]
//	...
//
//	[[tool.poetry.source]]
//	name = 'retrain'
//	...
func Encode(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "[%s]\n", poetryTable)
	authors := m.Authors
	if authors == nil {
		authors = []string{}
	}
	if err := encodeValue(&buf, header{
		Name:        m.Name,
		Version:     m.Version,
		Description: m.Description,
		Authors:     authors,
	}); err != nil {
		return nil, fmt.Errorf("encode %s: %w", poetryTable, err)
	}

	if err := encodeDependencies(&buf, dependenciesTable, m.Dependencies); err != nil {
		return nil, err
	}
	if err := encodeDependencies(&buf, devDependenciesTable, m.DevDependencies); err != nil {
		return nil, err
	}

	for _, src := range m.Sources {
		fmt.Fprintf(&buf, "\n[[%s]]\n", sourceArrayTable)
		if err := encodeValue(&buf, src); err != nil {
			return nil, fmt.Errorf("encode source %s: %w", src.Name, err)
		}
	}

	return buf.Bytes(), nil
}

// encodeDependencies writes one dependency table, one key per line.
func encodeDependencies(buf *bytes.Buffer, table string, deps *requirements.Map) error {
	fmt.Fprintf(buf, "\n[%s]\n", table)
	if deps == nil {
		return nil
	}
	for _, pin := range deps.Pins() {
		var value any = pin.Constraint
		if pin.Constraint.IsPlain() {
			value = pin.Constraint.Version
		}
		if err := encodeValue(buf, map[string]any{pin.Name: value}); err != nil {
			return fmt.Errorf("encode %s.%s: %w", table, pin.Name, err)
		}
	}
	return nil
}

// encodeValue writes v's keys with every nested table inlined.
func encodeValue(buf *bytes.Buffer, v any) error {
	enc := toml.NewEncoder(buf)
	enc.SetTablesInline(true)
	enc.SetArraysMultiline(false)
	return enc.Encode(v)
}
