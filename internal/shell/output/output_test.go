package output

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Printer Tests
// =============================================================================

func TestPrinter_Step(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Step(2, 3, "Replacing %s...", "Dockerfile")

	assert.Equal(t, "2/3 Replacing Dockerfile...\n", buf.String())
}

func TestPrinter_PreviewKeepsBodyBytes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	body := []byte("FROM python:3.9\n\n  RUN echo hi\t\n")

	require.NoError(t, p.Preview("Dockerfile", body))

	out := buf.String()
	assert.Equal(t, "------------- Dockerfile -------------\n"+string(body)+"\n-------------\n", out)
}

// =============================================================================
// Sink Tests
// =============================================================================

func TestFileSink_WritesAndReplaces(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/p/Dockerfile", []byte("old"), 0o644))

	sink := NewFileSink(fs)
	require.NoError(t, sink.Write("/p/Dockerfile", "Dockerfile", []byte("new")))

	data, err := afero.ReadFile(fs, "/p/Dockerfile")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileSink_ReadOnlyFsFails(t *testing.T) {
	sink := NewFileSink(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := sink.Write("/p/pyproject.toml", "pyproject.toml", []byte("x"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "/p/pyproject.toml")
}

func TestPreviewSink_PrintsInsteadOfWriting(t *testing.T) {
	var buf bytes.Buffer
	sink := NewPreviewSink(NewPrinter(&buf))

	require.NoError(t, sink.Write("/p/pyproject.toml", "pyproject.toml file", []byte("[tool.poetry]\n")))

	assert.Contains(t, buf.String(), "------------- pyproject.toml file -------------\n[tool.poetry]\n")
}
