package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/artpar/pymigrate/internal/shell/migrator"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Manifest  ManifestConfig  `mapstructure:"manifest"`
	Python    PythonConfig    `mapstructure:"python"`
	Torch     TorchConfig     `mapstructure:"torch"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Log       LogConfig       `mapstructure:"log"`

	// Preview prints the generated files instead of writing them.
	Preview bool `mapstructure:"preview"`
}

// ManifestConfig holds pyproject.toml settings.
type ManifestConfig struct {
	Path        string `mapstructure:"path"` // Relative to the project root unless absolute
	Version     string `mapstructure:"version"`
	Description string `mapstructure:"description"`
}

// PythonConfig holds the supported interpreter version.
type PythonConfig struct {
	Version string `mapstructure:"version"`
}

// TorchConfig holds the CPU torch build pinned for torch projects.
type TorchConfig struct {
	Version string `mapstructure:"version"`
}

// TemplatesConfig holds the template sources for the generated build files.
type TemplatesConfig struct {
	Dockerfile string `mapstructure:"dockerfile"`
	Workflow   string `mapstructure:"workflow"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Options converts the configuration into the migrator's input for root.
func (c *Config) Options(root string) migrator.Options {
	return migrator.Options{
		ProjectRoot:        root,
		ManifestPath:       c.Manifest.Path,
		ProjectVersion:     c.Manifest.Version,
		PythonVersion:      c.Python.Version,
		TorchVersion:       c.Torch.Version,
		Description:        c.Manifest.Description,
		DockerfileTemplate: c.Templates.Dockerfile,
		WorkflowTemplate:   c.Templates.Workflow,
		Preview:            c.Preview,
	}
}

// =============================================================================
// Config Loading
// =============================================================================

// flagKeys maps config keys to the command-line flags that override them.
var flagKeys = map[string]string{
	"manifest.path":        "pyproject",
	"manifest.version":     "project-version",
	"manifest.description": "description",
	"python.version":       "python-version",
	"torch.version":        "torch-cpu-version",
	"templates.dockerfile": "dockerfile-template",
	"templates.workflow":   "workflow-template",
	"preview":              "dry",
	"log.level":            "log-level",
	"log.format":           "log-format",
}

// LoadConfig loads configuration from defaults, file, environment and flags.
// flags may be nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("manifest.path", "pyproject.toml")
	v.SetDefault("manifest.version", "1.0.0")
	v.SetDefault("manifest.description", "")
	v.SetDefault("python.version", "3.9")
	v.SetDefault("torch.version", "2.0.0+cpu")
	v.SetDefault("templates.dockerfile", "./Dockerfile")
	v.SetDefault("templates.workflow", "./run-tests.yml")
	v.SetDefault("preview", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	// Load from file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("PYMIGRATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicit flags win over everything else
	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format writing to w.
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
