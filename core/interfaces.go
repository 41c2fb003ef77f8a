// Package core defines the shared document types and the renderer interface
// used by every mdfixtures package. Fixtures and synthetic documents are both
// plain markdown strings; the types here describe them once they are handed
// to a renderer or an inspector.
package core

// Feature is one capability a downstream markdown renderer is expected to
// support. Every Feature must appear in at least one fixture.
type Feature string

const (
	FeatureBold          Feature = "bold"
	FeatureItalic        Feature = "italic"
	FeatureStrikethrough Feature = "strikethrough"
	FeatureInlineCode    Feature = "inline-code"
	FeatureAutolink      Feature = "autolink"
	FeatureEmailAutolink Feature = "email-autolink"
	FeatureBlockquote    Feature = "blockquote"
	FeatureTaskChecked   Feature = "task-checked"
	FeatureTaskUnchecked Feature = "task-unchecked"
	FeatureTable         Feature = "table"
	FeatureCodeBlock     Feature = "code-block"
	FeatureImage         Feature = "image"
	FeatureInlineMath    Feature = "inline-math"
	FeatureBlockMath     Feature = "block-math"
	FeatureHeadingTree   Feature = "heading-tree"
	FeatureLongForm      Feature = "long-form"
)

// AllFeatures lists every Feature in a stable order.
var AllFeatures = []Feature{
	FeatureBold, FeatureItalic, FeatureStrikethrough, FeatureInlineCode,
	FeatureAutolink, FeatureEmailAutolink, FeatureBlockquote,
	FeatureTaskChecked, FeatureTaskUnchecked, FeatureTable,
	FeatureCodeBlock, FeatureImage, FeatureInlineMath, FeatureBlockMath,
	FeatureHeadingTree, FeatureLongForm,
}

// FeatureSet is an unordered set of features.
type FeatureSet map[Feature]bool

// Has reports whether f is in the set.
func (s FeatureSet) Has(f Feature) bool {
	return s[f]
}

// Sorted returns the members of the set in AllFeatures order.
func (s FeatureSet) Sorted() []Feature {
	out := make([]Feature, 0, len(s))
	for _, f := range AllFeatures {
		if s[f] {
			out = append(out, f)
		}
	}
	return out
}

// Fixture is a named, hand-authored markdown document.
type Fixture struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Features []Feature `json:"features"`
}

// Document kinds reported in DocMetadata.
const (
	KindFixture   = "fixture"
	KindSynthetic = "synthetic"
)

// DocMetadata describes a document handed to a renderer. It carries no
// timestamps: rendering the same document twice produces the same bytes.
type DocMetadata struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Bytes int    `json:"bytes"`
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor,omitempty"`
}

// Section represents a heading-delimited section of content.
type Section struct {
	Heading string `json:"heading"`
	Level   int    `json:"level"`
	Text    string `json:"text"`
}

// Link represents a hyperlink or image reference found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// DocContent holds the text and sectioned content of a document.
type DocContent struct {
	Markdown string    `json:"markdown"`
	Sections []Section `json:"sections"`
}

// DocStructure holds structural metadata parsed from the content.
type DocStructure struct {
	Headings      []Heading `json:"headings"`
	Links         []Link    `json:"links"`
	Images        []Link    `json:"images"`
	RemoteImages  int       `json:"remote_images"`
	Autolinks     []string  `json:"autolinks"`
	CodeBlocks    int       `json:"code_blocks"`
	CodeLanguages []string  `json:"code_languages"`
	Tables        int       `json:"tables"`
	Lists         int       `json:"lists"`
	TaskItems     int       `json:"task_items"`
}

// DocJSON is the complete JSON output for a single document.
type DocJSON struct {
	Metadata  DocMetadata  `json:"metadata"`
	Content   DocContent   `json:"content"`
	Structure DocStructure `json:"structure"`
}

// Renderer converts markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta DocMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
