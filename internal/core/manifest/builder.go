package manifest

import (
	"strings"

	"github.com/artpar/pymigrate/internal/core/requirements"
)

// =============================================================================
// Builder Functions
// =============================================================================

// Build assembles the manifest from the raw lines of both requirement files.
// This is a pure function - no I/O, no side effects.
//
// Production pins are applied in file order. Whenever a pin needs torch, the
// torch entry is forced to the CPU index with TorchVersion; an empty
// TorchVersion fails immediately with ErrMissingFrameworkVersion.
// Development pins skip the credential helper and anything already in production.
func Build(p Params) (*Manifest, error) {
	if p.PackageName == "" {
		return nil, ErrMissingPackageName
	}

	m := &Manifest{
		Name:            p.PackageName,
		Version:         p.Version,
		Description:     p.Description,
		Authors:         append([]string(nil), DefaultAuthors...),
		Dependencies:    requirements.NewMap(),
		DevDependencies: requirements.NewMap(),
	}

	m.Dependencies.Set(PythonKey, requirements.Constraint{Version: "^" + p.PythonVersion})

	err := requirements.Each(p.ProdLines, requirements.Options{}, func(pin requirements.Pin) error {
		m.Dependencies.Set(pin.Name, pin.Constraint)
		if !NeedsTorch(pin.Name) {
			return nil
		}

		m.UsesTorch = true
		if p.TorchVersion == "" {
			return ErrMissingFrameworkVersion
		}
		m.Dependencies.Set(TorchKey, TorchConstraint(p.TorchVersion))
		return nil
	})
	if err != nil {
		return nil, err
	}

	devOpts := requirements.Options{SkipPrefixes: []string{CredentialHelper}}
	err = requirements.Each(p.DevLines, devOpts, func(pin requirements.Pin) error {
		if !m.Dependencies.Has(pin.Name) {
			m.DevDependencies.Set(pin.Name, pin.Constraint)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.Sources = BuildSources(m.UsesTorch)
	return m, nil
}

// NeedsTorch reports whether a production package name implies torch.
func NeedsTorch(name string) bool {
	for _, prefix := range TorchPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// TorchConstraint pins torch to the CPU wheel index.
//
// Example:
//
//	TorchConstraint("2.0.0+cpu")
//	// Returns: Constraint{Version: "^2.0.0+cpu", Source: "pytorch-cpu"}
func TorchConstraint(version string) requirements.Constraint {
	return requirements.Constraint{
		Version: "^" + version,
		Source:  TorchCPUSource.Name,
	}
}

// BuildSources returns the registry list; the CPU torch index is appended when needed.
func BuildSources(usesTorch bool) []Source {
	sources := []Source{RetrainSource}
	if usesTorch {
		sources = append(sources, TorchCPUSource)
	}
	return sources
}
