// Package render — HTML renderer.
// Renders Markdown to an HTML fragment with goldmark and the GitHub
// Flavored Markdown extensions (tables, strikethrough, autolinks, task
// lists). Math is left as literal text for client-side typesetting.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/gfm"
	"github.com/yuin/goldmark"
)

// HTMLRenderer renders Markdown as an HTML fragment.
type HTMLRenderer struct {
	md goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer. Heading IDs are generated so the
// output can be navigated by anchor.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{md: gfm.New()}
}

// Render converts Markdown into HTML bytes.
func (r *HTMLRenderer) Render(markdown string, meta core.DocMetadata) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering %s to HTML: %w", meta.Name, err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
