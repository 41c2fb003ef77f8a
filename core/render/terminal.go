// Package render — terminal renderer.
// Renders Markdown as styled terminal text through glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gaurav-prasanna/mdfixtures/core"
)

const (
	defaultWidth = 80
	defaultStyle = "notty"
)

// TerminalRenderer renders Markdown for display in a terminal.
type TerminalRenderer struct {
	Style string
	Width int
}

// NewTerminalRenderer creates a TerminalRenderer. An empty style selects the
// plain "notty" style and a non-positive width falls back to 80 columns.
func NewTerminalRenderer(style string, width int) *TerminalRenderer {
	if style == "" {
		style = defaultStyle
	}
	if width <= 0 {
		width = defaultWidth
	}
	return &TerminalRenderer{Style: style, Width: width}
}

// Render converts Markdown into styled terminal text.
func (r *TerminalRenderer) Render(markdown string, meta core.DocMetadata) ([]byte, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.Style),
		glamour.WithWordWrap(r.Width),
	)
	if err != nil {
		return nil, fmt.Errorf("creating terminal renderer: %w", err)
	}

	out, err := tr.Render(markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering %s for terminal: %w", meta.Name, err)
	}

	// Remove trailing newlines that glamour adds
	return []byte(strings.TrimRight(out, "\n")), nil
}

// Extension returns the file extension for terminal output.
func (r *TerminalRenderer) Extension() string {
	return ".txt"
}
