// Package migrator runs the requirements.txt to Poetry migration against a project on disk.
//
// The pipeline is strictly linear: locate, parse and build, write the
// manifest, delete the legacy requirement files, render the Dockerfile, render
// the CI workflow. Nothing is retried or rolled back.
package migrator

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/artpar/pymigrate/internal/core/manifest"
	"github.com/artpar/pymigrate/internal/core/requirements"
	"github.com/artpar/pymigrate/internal/core/template"
	"github.com/artpar/pymigrate/internal/core/validation"
	"github.com/artpar/pymigrate/internal/shell/output"
	"github.com/artpar/pymigrate/internal/shell/project"
)

const totalSteps = 3

// Preview titles, one per artifact.
const (
	titleManifest   = "pyproject.toml file"
	titleDockerfile = "Dockerfile"
	titleWorkflow   = "Github tests action"
)

// =============================================================================
// Options / Result
// =============================================================================

// Options is the full input of a migration run.
type Options struct {
	ProjectRoot string
	// ManifestPath is joined onto ProjectRoot unless absolute.
	ManifestPath   string
	ProjectVersion string
	PythonVersion  string
	TorchVersion   string
	Description    string

	// Template paths are read as given (relative to the working directory).
	DockerfileTemplate string
	WorkflowTemplate   string

	// Preview prints every artifact and touches nothing on disk.
	Preview bool
}

// DefaultOptions returns the stock options for root.
func DefaultOptions(root string) Options {
	return Options{
		ProjectRoot:        root,
		ManifestPath:       "pyproject.toml",
		ProjectVersion:     "1.0.0",
		PythonVersion:      "3.9",
		TorchVersion:       "2.0.0+cpu",
		DockerfileTemplate: "./Dockerfile",
		WorkflowTemplate:   "./run-tests.yml",
	}
}

// Result describes what a run did.
type Result struct {
	PackageName     string
	ManifestPath    string
	UsesTorch       bool
	WorkflowSkipped bool
	Written         []string
	Deleted         []string
}

// =============================================================================
// Migrator
// =============================================================================

// Migrator runs migrations against a filesystem.
type Migrator struct {
	fs      afero.Fs
	printer *output.Printer
	logger  *slog.Logger
}

// New creates a Migrator. Progress goes to out; diagnostics go to logger.
func New(fs afero.Fs, out io.Writer, logger *slog.Logger) *Migrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Migrator{
		fs:      fs,
		printer: output.NewPrinter(out),
		logger:  logger,
	}
}

// Run executes the migration described by opts.
//
// Failures before the manifest is written leave the project untouched. After
// that, the legacy requirement files are gone even if a later stage fails.
func (m *Migrator) Run(opts Options) (*Result, error) {
	fs := m.fs
	var sink output.Sink = output.NewFileSink(fs)
	if opts.Preview {
		fs = afero.NewReadOnlyFs(m.fs)
		sink = output.NewPreviewSink(m.printer)
	}

	logger := m.logger.With("project_root", opts.ProjectRoot, "preview", opts.Preview)
	result := &Result{ManifestPath: opts.ManifestPath}

	// Stage 1: locate, parse, build, write manifest
	m.printer.Step(1, totalSteps, "Detecting package and requirements files...")
	layout, err := project.Locate(fs, opts.ProjectRoot)
	if err != nil {
		if errors.Is(err, project.ErrPackageNotFound) {
			m.printer.Step(1, totalSteps, "Failed to find package directory with __init__.py file.")
		}
		return nil, stageErr(StageLocate, opts.ProjectRoot, err)
	}
	result.PackageName = layout.PackageName
	m.printer.Step(1, totalSteps, "Detected package name %s", layout.PackageName)
	logger.Debug("package located", "package", layout.PackageName)

	prodLines, err := readLines(fs, layout.ProdRequirements)
	if err != nil {
		return nil, stageErr(StageRead, layout.ProdRequirements, err)
	}
	devLines, err := readLines(fs, layout.DevRequirements)
	if err != nil {
		return nil, stageErr(StageRead, layout.DevRequirements, err)
	}

	mf, err := manifest.Build(manifest.Params{
		PackageName:   layout.PackageName,
		Version:       opts.ProjectVersion,
		Description:   opts.Description,
		PythonVersion: opts.PythonVersion,
		TorchVersion:  opts.TorchVersion,
		ProdLines:     prodLines,
		DevLines:      devLines,
	})
	if err != nil {
		return nil, stageErr(StageManifest, "", err)
	}
	result.UsesTorch = mf.UsesTorch
	logger.Debug("manifest built",
		"dependencies", mf.Dependencies.Len(),
		"dev_dependencies", mf.DevDependencies.Len(),
		"uses_torch", mf.UsesTorch,
	)

	data, err := manifest.Encode(mf)
	if err != nil {
		return nil, stageErr(StageManifest, "", err)
	}

	manifestPath := project.ResolvePath(opts.ProjectRoot, opts.ManifestPath)
	if err := sink.Write(manifestPath, titleManifest, data); err != nil {
		return nil, stageErr(StageManifest, manifestPath, err)
	}

	if allowed, reason := validation.CanDeleteRequirements(opts.Preview); allowed {
		result.Written = append(result.Written, manifestPath)

		m.printer.Step(1, totalSteps, "Deleting old requirements files...")
		for _, path := range []string{layout.ProdRequirements, layout.DevRequirements} {
			if err := fs.Remove(path); err != nil {
				return result, stageErr(StageCleanup, path, err)
			}
			result.Deleted = append(result.Deleted, path)
		}
		logger.Info("legacy requirement files removed", "files", result.Deleted)
	} else {
		logger.Debug("requirement files kept", "reason", reason)
	}
	m.printer.Step(1, totalSteps, "Migration successful. pyproject.toml file created: %s", opts.ManifestPath)

	values := template.Values{
		ModuleName:    layout.PackageName,
		PythonVersion: opts.PythonVersion,
	}

	// Stage 2: Dockerfile, always replaced
	m.printer.Step(2, totalSteps, "Replacing Dockerfile...")
	if err := m.render(fs, sink, StageDockerfile, opts.DockerfileTemplate, layout.Dockerfile, titleDockerfile, values, logger); err != nil {
		return result, err
	}
	if !opts.Preview {
		result.Written = append(result.Written, layout.Dockerfile)
	}
	m.printer.Step(2, totalSteps, "Dockerfile replaced with the updated version.")

	// Stage 3: CI workflow, only when the project already has one
	m.printer.Step(3, totalSteps, "Replacing Github tests action...")
	exists, err := afero.Exists(fs, layout.Workflow)
	if err != nil {
		return result, stageErr(StageWorkflow, layout.Workflow, err)
	}
	if !exists {
		result.WorkflowSkipped = true
		m.printer.Step(3, totalSteps, "Github tests action not found! Skipping...")
		return result, nil
	}
	if err := m.render(fs, sink, StageWorkflow, opts.WorkflowTemplate, layout.Workflow, titleWorkflow, values, logger); err != nil {
		return result, err
	}
	if !opts.Preview {
		result.Written = append(result.Written, layout.Workflow)
	}
	m.printer.Step(3, totalSteps, "Github tests action replaced with the updated version.")

	return result, nil
}

// render reads a template, substitutes the placeholders and hands the result to sink.
func (m *Migrator) render(fs afero.Fs, sink output.Sink, stage Stage, src, dst, title string, values template.Values, logger *slog.Logger) error {
	raw, err := afero.ReadFile(fs, src)
	if err != nil {
		return stageErr(stage, src, err)
	}

	content := string(raw)
	logger.Debug("rendering template", "template", src, "destination", dst, "tokens", template.Tokens(content))
	rendered := template.Substitute(content, values)

	if leftover := validation.UnresolvedPlaceholders(rendered); len(leftover) > 0 {
		logger.Warn("template has unresolved placeholders", "template", src, "placeholders", leftover)
	}
	if stage == StageWorkflow {
		if msg := validation.ValidateWorkflow(rendered); msg != "" {
			logger.Warn("rendered workflow looks wrong", "template", src, "reason", msg)
		}
	}

	if err := sink.Write(dst, title, []byte(rendered)); err != nil {
		return stageErr(stage, dst, err)
	}
	return nil
}

// readLines reads a requirement file and splits it into lines.
func readLines(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return requirements.SplitLines(string(data)), nil
}
