// Package output handles file naming and writing for exported documents.
// Filenames are derived from the document name (e.g. feature-showcase.md);
// every write is atomic, so a reader never observes a half-written export.
package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/natefinch/atomic"
	"golang.org/x/sync/errgroup"
)

// Document is one named markdown document to export.
type Document struct {
	Meta     core.DocMetadata
	Markdown string
}

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write writes data to <OutputDir>/<sanitized name><ext> and returns the path.
func (w *Writer) Write(name string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, sanitize(name)+ext)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// ExportAll renders and writes every document concurrently. Paths are
// returned in input order. The first failure cancels the remaining work.
func ExportAll(ctx context.Context, w *Writer, docs []Document, r core.Renderer) ([]string, error) {
	paths := make([]string, len(docs))
	g, ctx := errgroup.WithContext(ctx)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := r.Render(doc.Markdown, doc.Meta)
			if err != nil {
				return fmt.Errorf("render %s: %w", doc.Meta.Name, err)
			}
			path, err := w.Write(doc.Meta.Name, data, r.Extension())
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// sanitize replaces characters outside [A-Za-z0-9-_] with underscores.
func sanitize(s string) string {
	if s == "" {
		return "untitled"
	}
	b := []byte(s)
	for i, ch := range b {
		if !((ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' || ch == '_') {
			b[i] = '_'
		}
	}
	return string(b)
}
