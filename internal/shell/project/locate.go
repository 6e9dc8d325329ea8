package project

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// =============================================================================
// Fixed Layout
// =============================================================================

const (
	// ProdRequirementsFile lists production pins.
	ProdRequirementsFile = "requirements.prod.txt"
	// DevRequirementsFile lists development pins (and usually production ones too).
	DevRequirementsFile = "requirements.txt"
	// PackageMarker marks a directory as an importable package.
	PackageMarker = "__init__.py"
	// DockerfileName is the container build file at the project root.
	DockerfileName = "Dockerfile"
)

// WorkflowPath is the CI workflow location relative to the project root.
var WorkflowPath = filepath.Join(".github", "workflows", "run-tests.yml")

// reservedDirs never count as the project package.
var reservedDirs = map[string]bool{
	"tests": true,
	"setup": true,
}

// Layout is everything the migrator needs to know about a project on disk.
type Layout struct {
	Root             string
	PackageName      string
	ProdRequirements string
	DevRequirements  string
	Dockerfile       string
	Workflow         string
}

// =============================================================================
// Locator Functions
// =============================================================================

// Locate finds the package directory and derives every path of the layout.
// Returns ErrPackageNotFound when no subdirectory qualifies.
func Locate(fs afero.Fs, root string) (*Layout, error) {
	name, err := FindPackage(fs, root)
	if err != nil {
		return nil, err
	}

	prod, dev := RequirementFiles(root)
	return &Layout{
		Root:             root,
		PackageName:      name,
		ProdRequirements: prod,
		DevRequirements:  dev,
		Dockerfile:       filepath.Join(root, DockerfileName),
		Workflow:         filepath.Join(root, WorkflowPath),
	}, nil
}

// RequirementFiles returns the production and development requirement paths.
func RequirementFiles(root string) (prod, dev string) {
	return filepath.Join(root, ProdRequirementsFile), filepath.Join(root, DevRequirementsFile)
}

// FindPackage returns the first immediate subdirectory of root holding an
// __init__.py file, skipping tests and setup. Entries are visited in the
// order the filesystem lists them; nothing is sorted.
func FindPackage(fs afero.Fs, root string) (string, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return "", NewProjectError("FindPackage", root, "cannot stat project root", err)
	}
	if !info.IsDir() {
		return "", NewProjectError("FindPackage", root, "not a directory", ErrRootNotDirectory)
	}

	dir, err := fs.Open(root)
	if err != nil {
		return "", NewProjectError("FindPackage", root, "cannot open project root", err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return "", NewProjectError("FindPackage", root, "cannot list project root", err)
	}

	for _, name := range names {
		if reservedDirs[name] {
			continue
		}
		marker, err := fs.Stat(filepath.Join(root, name, PackageMarker))
		if err != nil || !marker.Mode().IsRegular() {
			continue
		}
		return name, nil
	}

	return "", ErrPackageNotFound
}

// ResolvePath joins p onto root unless p is already absolute.
func ResolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
