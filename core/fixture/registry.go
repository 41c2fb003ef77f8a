// Package fixture is the static fixture registry: a fixed set of named,
// hand-authored markdown documents that together cover every feature a
// downstream renderer claims to support.
//
// The documents are embedded at compile time and never change at runtime, so
// any number of goroutines may read them without coordination.
package fixture

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/mdfixtures/core"
)

// Name is the stable identifier callers use to select a fixture.
type Name string

const (
	Showcase   Name = "feature-showcase"
	Streaming  Name = "streaming-narrative"
	Navigation Name = "navigation"
)

// ErrUnknownFixture is returned by ParseName for identifiers that are not
// in the registry.
var ErrUnknownFixture = errors.New("unknown fixture")

var (
	//go:embed fixtures/feature-showcase.md
	showcaseMD string

	//go:embed fixtures/streaming-narrative.md
	streamingMD string

	//go:embed fixtures/navigation.md
	navigationMD string
)

// entry is the registry's private record. Features are the ones the
// authored content is written to cover.
type entry struct {
	name     Name
	title    string
	content  *string
	features []core.Feature
}

// registry is in presentation order and is never modified.
var registry = []entry{
	{
		name:    Showcase,
		title:   "Markdown Feature Showcase",
		content: &showcaseMD,
		features: []core.Feature{
			core.FeatureBold, core.FeatureItalic, core.FeatureStrikethrough,
			core.FeatureInlineCode, core.FeatureAutolink, core.FeatureEmailAutolink,
			core.FeatureBlockquote, core.FeatureTaskChecked, core.FeatureTaskUnchecked,
			core.FeatureTable, core.FeatureCodeBlock, core.FeatureImage,
			core.FeatureInlineMath, core.FeatureBlockMath,
		},
	},
	{
		name:    Streaming,
		title:   "Streaming Markdown, Explained",
		content: &streamingMD,
		features: []core.Feature{
			core.FeatureBold, core.FeatureInlineCode, core.FeatureCodeBlock, core.FeatureLongForm,
		},
	},
	{
		name:     Navigation,
		title:    "Navigation Guide",
		content:  &navigationMD,
		features: []core.Feature{core.FeatureHeadingTree},
	},
}

// ShowcaseMarkdown returns the feature-showcase document.
func ShowcaseMarkdown() string { return showcaseMD }

// StreamingMarkdown returns the streaming-narrative document.
func StreamingMarkdown() string { return streamingMD }

// NavigationMarkdown returns the navigation (table-of-contents) document.
func NavigationMarkdown() string { return navigationMD }

// Get looks up a fixture by name.
func Get(name Name) (core.Fixture, bool) {
	for _, e := range registry {
		if e.name == name {
			return e.fixture(), true
		}
	}
	return core.Fixture{}, false
}

// All returns every fixture in registry order.
func All() []core.Fixture {
	out := make([]core.Fixture, len(registry))
	for i, e := range registry {
		out[i] = e.fixture()
	}
	return out
}

// Names returns every fixture identifier in registry order.
func Names() []Name {
	out := make([]Name, len(registry))
	for i, e := range registry {
		out[i] = e.name
	}
	return out
}

// ParseName validates a user-supplied fixture identifier.
func ParseName(s string) (Name, error) {
	name := Name(s)
	if _, ok := Get(name); !ok {
		return "", fmt.Errorf("%w: %q (known: %v)", ErrUnknownFixture, s, Names())
	}
	return name, nil
}

// fixture copies the feature slice so callers never alias registry state.
func (e entry) fixture() core.Fixture {
	features := make([]core.Feature, len(e.features))
	copy(features, e.features)
	return core.Fixture{
		Name:     string(e.name),
		Title:    e.title,
		Content:  *e.content,
		Features: features,
	}
}
