// Package gfm configures the goldmark instance shared by the HTML renderer
// and the table of contents, so TOC anchors and rendered heading ids come
// from the same generator.
package gfm

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// New returns goldmark with the GitHub Flavored Markdown extensions and
// auto-generated heading ids.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
}
