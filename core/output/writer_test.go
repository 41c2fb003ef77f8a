package output

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, w.OutputDir)
	assert.DirExists(t, dir)
}

func TestWrite(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write("feature-showcase", []byte("# hi\n"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.OutputDir, "feature-showcase.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", string(data))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "feature-showcase", sanitize("feature-showcase"))
	assert.Equal(t, "a_b_c", sanitize("a/b c"))
	assert.Equal(t, "untitled", sanitize(""))
}

func TestExportAll(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	docs := []Document{
		{Meta: core.DocMetadata{Name: "one"}, Markdown: "# One\n"},
		{Meta: core.DocMetadata{Name: "two"}, Markdown: "# Two\n"},
		{Meta: core.DocMetadata{Name: "three"}, Markdown: "# Three\n"},
	}
	paths, err := ExportAll(context.Background(), w, docs, render.NewMarkdownRenderer())
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, doc := range docs {
		assert.Equal(t, filepath.Join(w.OutputDir, doc.Meta.Name+".md"), paths[i])
		data, err := os.ReadFile(paths[i])
		require.NoError(t, err)
		assert.Equal(t, doc.Markdown, string(data))
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(string, core.DocMetadata) ([]byte, error) {
	return nil, errors.New("nope")
}

func (failingRenderer) Extension() string { return ".x" }

func TestExportAll_RenderError(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = ExportAll(context.Background(), w, []Document{{Meta: core.DocMetadata{Name: "bad"}}}, failingRenderer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render bad")
	assert.NoFileExists(t, filepath.Join(w.OutputDir, "bad.x"))
}
