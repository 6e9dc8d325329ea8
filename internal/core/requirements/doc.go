// Package requirements provides pure functions for parsing pinned pip requirement files.
//
// This package contains the functional core logic for turning the lines of
// requirements.txt / requirements.prod.txt into ordered dependency maps. All
// functions are pure (no I/O, no side effects).
//
// # Functions
//
//   - SplitLines: Split raw file content into lines
//   - ParsePin: Parse a single name==version line
//   - Each: Walk the pins of a file in order
//   - ParseLines: Parse a whole file into a pin list
//   - ToMap: Collapse pins into an ordered Map
//
// # Usage
//
// The migrator reads both files from disk and hands the lines to this package:
//
//	pins, err := requirements.ParseLines(requirements.SplitLines(content), requirements.Options{})
//	deps := requirements.ToMap(pins)
package requirements
