package manifest

import (
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodedPoetry mirrors the encoded document for round-trip checks.
type decodedPoetry struct {
	Tool struct {
		Poetry struct {
			Name            string         `toml:"name"`
			Version         string         `toml:"version"`
			Description     string         `toml:"description"`
			Authors         []string       `toml:"authors"`
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Source          []Source       `toml:"source"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func buildAndEncode(t *testing.T, p Params) (string, decodedPoetry) {
	t.Helper()

	m, err := Build(p)
	require.NoError(t, err)

	data, err := Encode(m)
	require.NoError(t, err)

	var doc decodedPoetry
	require.NoError(t, toml.Unmarshal(data, &doc), string(data))
	return string(data), doc
}

// =============================================================================
// Encode Tests
// =============================================================================

func TestEncode_RoundTrip(t *testing.T) {
	p := baseParams()
	p.ProdLines = []string{"requests==2.31.0", "python-server-infra[api-analytics]==1.2.0"}
	p.DevLines = []string{"pytest==7.3.1"}

	_, doc := buildAndEncode(t, p)
	poetry := doc.Tool.Poetry

	assert.Equal(t, "scoring", poetry.Name)
	assert.Equal(t, "1.0.0", poetry.Version)
	assert.Equal(t, "candidate scoring", poetry.Description)
	assert.Equal(t, []string{"retrain.ai"}, poetry.Authors)

	assert.Equal(t, "^3.9", poetry.Dependencies["python"])
	assert.Equal(t, "2.31.0", poetry.Dependencies["requests"])
	assert.Equal(t, map[string]any{
		"extras":  []any{"api-analytics"},
		"version": "1.2.0",
	}, poetry.Dependencies["python-server-infra"])

	assert.Equal(t, "7.3.1", poetry.DevDependencies["pytest"])
	assert.Equal(t, []Source{RetrainSource}, poetry.Source)
}

func TestEncode_TorchExample(t *testing.T) {
	p := baseParams()
	p.ProdLines = []string{"torch==2.0.0"}

	out, doc := buildAndEncode(t, p)
	poetry := doc.Tool.Poetry

	assert.Equal(t, map[string]any{
		"version": "^2.0.0+cpu",
		"source":  "pytorch-cpu",
	}, poetry.Dependencies["torch"])
	require.Len(t, poetry.Source, 2)
	assert.Equal(t, "pytorch-cpu", poetry.Source[1].Name)
	assert.Equal(t, "https://download.pytorch.org/whl/cpu", poetry.Source[1].URL)
	assert.True(t, poetry.Source[1].Secondary)
	assert.False(t, poetry.Source[1].Default)

	assert.Contains(t, out, "torch = {")
}

func TestEncode_PreservesDependencyOrder(t *testing.T) {
	p := baseParams()
	p.ProdLines = []string{"zeta==1.0", "alpha==2.0", "mid==3.0"}

	out, _ := buildAndEncode(t, p)

	section := out[strings.Index(out, "[tool.poetry.dependencies]"):]
	python := strings.Index(section, "python =")
	zeta := strings.Index(section, "zeta =")
	alpha := strings.Index(section, "alpha =")
	mid := strings.Index(section, "mid =")

	require.True(t, python >= 0 && zeta >= 0 && alpha >= 0 && mid >= 0, out)
	assert.Less(t, python, zeta)
	assert.Less(t, zeta, alpha)
	assert.Less(t, alpha, mid)
}

func TestEncode_SectionOrder(t *testing.T) {
	out, _ := buildAndEncode(t, baseParams())

	poetry := strings.Index(out, "[tool.poetry]\n")
	deps := strings.Index(out, "[tool.poetry.dependencies]")
	dev := strings.Index(out, "[tool.poetry.dev-dependencies]")
	src := strings.Index(out, "[[tool.poetry.source]]")

	assert.Equal(t, 0, poetry)
	assert.Less(t, poetry, deps)
	assert.Less(t, deps, dev)
	assert.Less(t, dev, src)
}

func TestEncode_EmptyDescription(t *testing.T) {
	p := baseParams()
	p.Description = ""

	_, doc := buildAndEncode(t, p)
	assert.Equal(t, "", doc.Tool.Poetry.Description)
}
