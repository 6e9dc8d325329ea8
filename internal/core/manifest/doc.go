// Package manifest provides pure functions for building a Poetry pyproject manifest.
//
// This package contains the functional core logic for turning pinned
// requirement lines into the [tool.poetry] section of a pyproject.toml.
// All functions are pure (no I/O, no side effects).
//
// # Functions
//
//   - Build: Assemble production/dev dependencies and registry sources
//   - NeedsTorch: Detect packages that require torch
//   - BuildSources: Compute the registry list
//   - Encode: Render the manifest as TOML
//
// # Usage
//
// The migrator reads the requirement files and hands their lines over:
//
//	m, err := manifest.Build(manifest.Params{
//	    PackageName:   "scoring",
//	    Version:       "1.0.0",
//	    PythonVersion: "3.9",
//	    TorchVersion:  "2.0.0+cpu",
//	    ProdLines:     prodLines,
//	    DevLines:      devLines,
//	})
//	data, err := manifest.Encode(m)
package manifest
