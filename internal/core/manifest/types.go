package manifest

import "github.com/artpar/pymigrate/internal/core/requirements"

// =============================================================================
// Manifest Types
// =============================================================================

// Manifest is the [tool.poetry] section of a pyproject.toml.
type Manifest struct {
	Name            string
	Version         string
	Description     string
	Authors         []string
	Dependencies    *requirements.Map
	DevDependencies *requirements.Map
	Sources         []Source

	// UsesTorch is set when a production dependency pulls in the tensor framework.
	UsesTorch bool
}

// Source is a package registry entry ([[tool.poetry.source]]).
type Source struct {
	Name      string `toml:"name"`
	URL       string `toml:"url"`
	Default   bool   `toml:"default"`
	Secondary bool   `toml:"secondary"`
}

// Params are the inputs to Build.
type Params struct {
	PackageName   string
	Version       string
	Description   string
	PythonVersion string
	// TorchVersion is required only when a torch dependency is detected.
	TorchVersion string

	ProdLines []string
	DevLines  []string
}

// =============================================================================
// Fixed Values
// =============================================================================

const (
	// PythonKey is the synthetic interpreter dependency.
	PythonKey = "python"
	// TorchKey is the tensor framework dependency forced onto the CPU index.
	TorchKey = "torch"
	// CredentialHelper is never carried into dev-dependencies.
	CredentialHelper = "keyring"
)

// DefaultAuthors is written to every manifest.
var DefaultAuthors = []string{"retrain.ai"}

// RetrainSource is the private registry every project resolves against.
var RetrainSource = Source{
	Name:      "retrain",
	URL:       "https://europe-west4-python.pkg.dev/retrain-utils/retrain-pypi/simple/",
	Default:   false,
	Secondary: true,
}

// TorchCPUSource serves CPU-only torch wheels.
var TorchCPUSource = Source{
	Name:      "pytorch-cpu",
	URL:       "https://download.pytorch.org/whl/cpu",
	Default:   false,
	Secondary: true,
}

// TorchPrefixes mark a production dependency as needing torch.
var TorchPrefixes = []string{"torch", "sentence-transformers", "sentence_transformers"}
