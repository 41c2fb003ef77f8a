package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	html := `<h1>Chapter 1: Installation</h1>
<p>Some <strong>bold</strong> text.</p>
<h2>Requirements</h2>
<ul><li>first</li><li>second</li></ul>`

	got, err := New().Normalize(html)
	require.NoError(t, err)
	assert.Contains(t, got, "# Chapter 1: Installation")
	assert.Contains(t, got, "## Requirements")
	assert.Contains(t, got, "**bold**")
	assert.Contains(t, got, "- first")
}

func TestNormalize_Empty(t *testing.T) {
	got, err := New().Normalize("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
