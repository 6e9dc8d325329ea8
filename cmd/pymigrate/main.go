// Command pymigrate moves a Python project from pinned requirements files to a
// Poetry pyproject.toml and refreshes its Dockerfile and CI test workflow.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/artpar/pymigrate/internal/core/validation"
	"github.com/artpar/pymigrate/internal/shell/migrator"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess        = 0
	ExitConfigError    = 1
	ExitMigrationError = 2
)

// exitError carries the process exit code out of a cobra RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var eErr *exitError
	if errors.As(err, &eErr) {
		fmt.Fprintf(stderr, "%v\n", eErr.err)
		return eErr.code
	}

	// Argument and flag errors from cobra itself
	fmt.Fprintf(stderr, "%v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	return ExitConfigError
}

// =============================================================================
// Root Command
// =============================================================================

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pymigrate <project_root>",
		Short: "Migrate requirements.txt to pyproject.toml for Poetry",
		Long: `Converts requirements.prod.txt and requirements.txt into a Poetry
pyproject.toml, deletes the old requirement files, and rewrites the Dockerfile
and .github/workflows/run-tests.yml from templates.

Use --dry to print every generated file without touching the project.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args[0], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.String("config", "", "Path to config file")
	f.String("pyproject", "pyproject.toml", "Path to pyproject.toml")
	f.String("project-version", "1.0.0", "Version of the project")
	f.String("python-version", "3.9", "Version of supported python")
	f.String("torch-cpu-version", "2.0.0+cpu", "Version of supported pytorch package")
	f.String("description", "", "Description of the project")
	f.Bool("dry", false, "Dry run only prints actions")
	f.String("dockerfile-template", "./Dockerfile", "Path to the Dockerfile template")
	f.String("workflow-template", "./run-tests.yml", "Path to the tests workflow template")
	f.String("log-level", "warn", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	f.SetNormalizeFunc(dashedFlagNames)

	return cmd
}

// dashedFlagNames accepts the underscore spellings (--python_version) as well.
func dashedFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func runMigrate(cmd *cobra.Command, root string, stdout, stderr io.Writer) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("configuration error: %w", err)}
	}

	opts := cfg.Options(root)
	if field, msg := validation.ValidateMigrationFields(opts.ProjectRoot, opts.PythonVersion, opts.ManifestPath); field != "" {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("configuration error: %s: %s", field, msg)}
	}
	if field, msg := validation.ValidateTemplateFields(opts.DockerfileTemplate, opts.WorkflowTemplate); field != "" {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("configuration error: %s: %s", field, msg)}
	}

	logger := SetupLogger(cfg, stderr).With("run_id", uuid.New().String()[:8])
	logger.Info("starting migration",
		"version", Version,
		"project_root", root,
		"preview", opts.Preview,
	)

	result, err := migrator.New(afero.NewOsFs(), stdout, logger).Run(opts)
	if err != nil {
		logger.Error("migration failed", "error", err)
		return &exitError{code: ExitMigrationError, err: fmt.Errorf("migration failed: %w", err)}
	}

	logger.Info("migration finished",
		"package", result.PackageName,
		"uses_torch", result.UsesTorch,
		"written", result.Written,
		"deleted", result.Deleted,
		"workflow_skipped", result.WorkflowSkipped,
	)
	return nil
}
