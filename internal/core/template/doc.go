// Package template provides pure placeholder substitution for build artifacts.
//
// The Dockerfile and CI workflow templates carry two literal tokens,
// <<MODULE_NAME>> and <<PYTHON_VERSION>>. This package swaps them for the
// migrated project's values. No I/O happens here.
//
//	rendered := template.Substitute(raw, template.Values{
//	    ModuleName:    "scoring",
//	    PythonVersion: "3.9",
//	})
package template
