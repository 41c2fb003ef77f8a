// Package render provides output renderers for fixture and synthetic
// documents. This file implements the Markdown renderer, which is a simple
// passthrough since markdown is the canonical format.
package render

import (
	"github.com/gaurav-prasanna/mdfixtures/core"
)

// MarkdownRenderer writes Markdown as-is.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown as bytes (passthrough).
func (r *MarkdownRenderer) Render(markdown string, meta core.DocMetadata) ([]byte, error) {
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
