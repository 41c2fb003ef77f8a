// Package coverage checks the fixture coverage contract: every feature the
// downstream renderer supports must appear in at least one fixture.
//
// Detection renders the markdown to HTML with the GFM renderer and inspects
// the result with goquery, so a feature only counts when it is syntactically
// well formed enough for a real renderer to recognize it. Math has no HTML
// form and is detected on the prose with code removed.
package coverage

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/links"
	"github.com/gaurav-prasanna/mdfixtures/core/mdscan"
	"github.com/gaurav-prasanna/mdfixtures/core/normalize"
	"github.com/gaurav-prasanna/mdfixtures/core/render"
	"github.com/gaurav-prasanna/mdfixtures/core/toc"
)

// Thresholds for the structural features.
const (
	minTopLevelSections = 4
	minHeadingDepth     = 3
	minLongFormParas    = 6
	minLongFormLangs    = 2
)

var (
	blockMathRegex  = regexp.MustCompile(`(?ms)^[ \t]*\$\$[ \t]*$.+?^[ \t]*\$\$[ \t]*$|\$\$[^$\n]+\$\$`)
	inlineMathRegex = regexp.MustCompile(`\$[^\s$]([^$\n]*[^\s$])?\$`)
)

// Result is the detection outcome for one document.
type Result struct {
	Name     string
	Declared []core.Feature
	Detected core.FeatureSet
}

// Undetected lists declared features the content does not actually contain.
func (r Result) Undetected() []core.Feature {
	var out []core.Feature
	for _, f := range r.Declared {
		if !r.Detected.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Report aggregates results across fixtures.
type Report struct {
	Results []Result
	Union   core.FeatureSet
}

// Missing lists required features no fixture contains, in AllFeatures order.
func (r Report) Missing() []core.Feature {
	var out []core.Feature
	for _, f := range core.AllFeatures {
		if !r.Union.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// OK reports whether the coverage contract holds: nothing missing and every
// declared feature detected.
func (r Report) OK() bool {
	if len(r.Missing()) > 0 {
		return false
	}
	for _, res := range r.Results {
		if len(res.Undetected()) > 0 {
			return false
		}
	}
	return true
}

// Checker detects features. It is safe for concurrent use once created.
type Checker struct {
	html *render.HTMLRenderer
}

// New creates a Checker.
func New() *Checker {
	return &Checker{html: render.NewHTMLRenderer()}
}

// Check runs detection over every fixture.
func (c *Checker) Check(fixtures []core.Fixture) (Report, error) {
	report := Report{Union: core.FeatureSet{}}
	for _, f := range fixtures {
		detected, err := c.Detect(f.Content)
		if err != nil {
			return Report{}, fmt.Errorf("checking %s: %w", f.Name, err)
		}
		report.Results = append(report.Results, Result{
			Name:     f.Name,
			Declared: f.Features,
			Detected: detected,
		})
		for feat := range detected {
			report.Union[feat] = true
		}
	}
	return report, nil
}

// Detect returns the features present in markdown.
func (c *Checker) Detect(markdown string) (core.FeatureSet, error) {
	out, err := c.html.Render(markdown, core.DocMetadata{Name: "coverage"})
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered HTML: %w", err)
	}

	set := core.FeatureSet{}
	mark := func(f core.Feature, ok bool) {
		if ok {
			set[f] = true
		}
	}

	mark(core.FeatureBold, doc.Find("strong").Length() > 0)
	mark(core.FeatureItalic, doc.Find("em").Length() > 0)
	mark(core.FeatureStrikethrough, doc.Find("del").Length() > 0)
	mark(core.FeatureBlockquote, doc.Find("blockquote").Length() > 0)
	mark(core.FeatureInlineCode, doc.Find("code").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return !s.Parent().Is("pre")
	}).Length() > 0)
	mark(core.FeatureCodeBlock, doc.Find(`pre > code[class^="language-"]`).Length() > 0)
	mark(core.FeatureAutolink, doc.Find("a[href]").FilterFunction(isBareURLLink).Length() > 0)
	mark(core.FeatureEmailAutolink, doc.Find("a[href]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		return links.IsMailto(href)
	}).Length() > 0)
	mark(core.FeatureTaskChecked, doc.Find(`input[type="checkbox"][checked]`).Length() > 0)
	mark(core.FeatureTaskUnchecked, doc.Find(`input[type="checkbox"]:not([checked])`).Length() > 0)
	mark(core.FeatureTable, doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("thead tr").Length() > 0 && s.Find("tbody tr").Length() >= 2
	}).Length() > 0)
	mark(core.FeatureImage, doc.Find("img[src]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		return links.ValidImageRef(src)
	}).Length() > 0)

	prose := mdscan.StripCode(markdown)
	mark(core.FeatureBlockMath, blockMathRegex.MatchString(prose))
	mark(core.FeatureInlineMath, inlineMathRegex.MatchString(blockMathRegex.ReplaceAllString(prose, "")))

	mark(core.FeatureHeadingTree, isHeadingTree(toc.FromMarkdown(markdown)))
	mark(core.FeatureLongForm, isLongForm(markdown, doc))

	return set, nil
}

// RoundTrip renders markdown to HTML, converts it back with the normalizer
// and returns the heading texts of the result.
func (c *Checker) RoundTrip(markdown string) ([]string, error) {
	out, err := c.html.Render(markdown, core.DocMetadata{Name: "roundtrip"})
	if err != nil {
		return nil, err
	}
	back, err := normalize.New().Normalize(string(out))
	if err != nil {
		return nil, err
	}
	headings := mdscan.Headings(back)
	texts := make([]string, len(headings))
	for i, h := range headings {
		texts[i] = h.Text
	}
	return texts, nil
}

// isBareURLLink matches links produced by autolinking: the visible text is
// the URL itself.
func isBareURLLink(_ int, s *goquery.Selection) bool {
	href, _ := s.Attr("href")
	if !links.IsRemote(href) {
		return false
	}
	return strings.TrimSpace(s.Text()) == href
}

// isHeadingTree requires enough top-level sections, enough nesting, and at
// least one parent with two or more children at every level.
func isHeadingTree(root *toc.Node) bool {
	if len(root.Children) < minTopLevelSections || root.Depth() < minHeadingDepth {
		return false
	}
	depth := root.Depth()
	siblings := make([]bool, depth+1)
	siblings[1] = true // the root's own children, checked above
	root.Walk(func(n *toc.Node, d int) {
		if len(n.Children) >= 2 {
			siblings[d+1] = true
		}
	})
	for d := 1; d <= depth; d++ {
		if !siblings[d] {
			return false
		}
	}
	return true
}

// isLongForm identifies a multi-section prose document with code samples in
// more than one language.
func isLongForm(markdown string, doc *goquery.Document) bool {
	levels := make(map[int]bool)
	for _, h := range mdscan.Headings(markdown) {
		levels[h.Level] = true
	}
	langs := make(map[string]bool)
	for _, f := range mdscan.Fences(markdown) {
		if f.Lang != "" {
			langs[f.Lang] = true
		}
	}
	paras := doc.Find("p").Length()
	return len(levels) >= 2 && len(langs) >= minLongFormLangs && paras >= minLongFormParas
}
