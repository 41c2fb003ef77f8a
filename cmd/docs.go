package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/fixture"
	"github.com/gaurav-prasanna/mdfixtures/core/output"
	"github.com/gaurav-prasanna/mdfixtures/core/synth"
)

// syntheticName selects the procedurally built document in commands that
// take a document name.
const syntheticName = "synthetic"

// fixtureDoc wraps a registry fixture for rendering.
func fixtureDoc(f core.Fixture) output.Document {
	return output.Document{
		Meta: core.DocMetadata{
			Name:  f.Name,
			Title: f.Title,
			Kind:  core.KindFixture,
			Bytes: len(f.Content),
		},
		Markdown: f.Content,
	}
}

// syntheticDoc builds the long document with the given section count.
func syntheticDoc(sections int) (output.Document, error) {
	md, err := synth.BuildInt(sections)
	if err != nil {
		return output.Document{}, err
	}
	return output.Document{
		Meta: core.DocMetadata{
			Name:  syntheticName,
			Title: fmt.Sprintf("Synthetic Document (%d sections)", sections),
			Kind:  core.KindSynthetic,
			Bytes: len(md),
		},
		Markdown: md,
	}, nil
}

// resolveDoc looks up a fixture by name, or builds the synthetic document.
func resolveDoc(name string, sections int) (output.Document, error) {
	if name == syntheticName {
		return syntheticDoc(sections)
	}
	n, err := fixture.ParseName(name)
	if err != nil {
		return output.Document{}, err
	}
	f, _ := fixture.Get(n)
	return fixtureDoc(f), nil
}

// allDocs returns every fixture followed by the synthetic document.
func allDocs(sections int) ([]output.Document, error) {
	var docs []output.Document
	for _, f := range fixture.All() {
		docs = append(docs, fixtureDoc(f))
	}
	synthetic, err := syntheticDoc(sections)
	if err != nil {
		return nil, err
	}
	return append(docs, synthetic), nil
}

// docNames lists the names resolveDoc accepts, for shell completion.
func docNames() []string {
	var names []string
	for _, n := range fixture.Names() {
		names = append(names, string(n))
	}
	return append(names, syntheticName)
}
