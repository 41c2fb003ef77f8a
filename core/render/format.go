package render

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core"
)

// ErrUnknownFormat is returned by ForFormat for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted format names.
var Formats = []string{"md", "json", "pdf", "html", "txt"}

// Options configures renderers that have settings.
type Options struct {
	Style string
	Width int
}

// ForFormat creates the renderer for a format name.
func ForFormat(format string, opts Options) (core.Renderer, error) {
	switch format {
	case "md", "markdown":
		return NewMarkdownRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "pdf":
		return NewPDFRenderer(), nil
	case "html":
		return NewHTMLRenderer(), nil
	case "txt", "terminal":
		return NewTerminalRenderer(opts.Style, opts.Width), nil
	default:
		return nil, fmt.Errorf("%w: %q (use one of %v)", ErrUnknownFormat, format, Formats)
	}
}
