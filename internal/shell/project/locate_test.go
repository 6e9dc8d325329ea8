package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

const root = "/work/service"

func newProject(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0o755))
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(""), 0o644))
	}
	return fs
}

// =============================================================================
// FindPackage Tests
// =============================================================================

func TestFindPackage_Found(t *testing.T) {
	fs := newProject(t, "scoring/__init__.py", "scoring/model.py", "README.md")

	name, err := FindPackage(fs, root)
	require.NoError(t, err)
	assert.Equal(t, "scoring", name)
}

func TestFindPackage_SkipsReservedNames(t *testing.T) {
	fs := newProject(t, "setup/__init__.py", "tests/__init__.py", "scoring/__init__.py")

	name, err := FindPackage(fs, root)
	require.NoError(t, err)
	assert.Equal(t, "scoring", name)
}

func TestFindPackage_OnlyReserved(t *testing.T) {
	fs := newProject(t, "tests/__init__.py", "setup/__init__.py")

	_, err := FindPackage(fs, root)
	assert.True(t, errors.Is(err, ErrPackageNotFound))
}

func TestFindPackage_MarkerMustBeFile(t *testing.T) {
	fs := newProject(t, "scoring/model.py")
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "scoring", "__init__.py"), 0o755))

	_, err := FindPackage(fs, root)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestFindPackage_IgnoresNestedPackages(t *testing.T) {
	fs := newProject(t, "src/scoring/__init__.py")

	_, err := FindPackage(fs, root)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestFindPackage_MissingRoot(t *testing.T) {
	_, err := FindPackage(afero.NewMemMapFs(), "/nope")
	require.Error(t, err)

	var pErr *ProjectError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "FindPackage", pErr.Op)
	assert.Equal(t, "/nope", pErr.Path)
}

func TestFindPackage_RootIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file", []byte("x"), 0o644))

	_, err := FindPackage(fs, "/file")
	assert.ErrorIs(t, err, ErrRootNotDirectory)
}

// =============================================================================
// Locate Tests
// =============================================================================

func TestLocate_Layout(t *testing.T) {
	fs := newProject(t, "scoring/__init__.py")

	layout, err := Locate(fs, root)
	require.NoError(t, err)

	assert.Equal(t, &Layout{
		Root:             root,
		PackageName:      "scoring",
		ProdRequirements: "/work/service/requirements.prod.txt",
		DevRequirements:  "/work/service/requirements.txt",
		Dockerfile:       "/work/service/Dockerfile",
		Workflow:         "/work/service/.github/workflows/run-tests.yml",
	}, layout)
}

func TestLocate_NotFound(t *testing.T) {
	layout, err := Locate(newProject(t), root)
	assert.Nil(t, layout)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/work/service/pyproject.toml", ResolvePath(root, "pyproject.toml"))
	assert.Equal(t, "/tmp/out.toml", ResolvePath(root, "/tmp/out.toml"))
}
