// Package render — JSON renderer.
// Builds the structured JSON output from Markdown and document metadata.
// Headings and anchors come from the shared goldmark parser, matching the
// HTML output; everything else is read fence-aware through mdscan.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/links"
	"github.com/gaurav-prasanna/mdfixtures/core/mdscan"
	"github.com/gaurav-prasanna/mdfixtures/core/toc"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into the DocJSON structure.
func (r *JSONRenderer) Render(markdown string, meta core.DocMetadata) ([]byte, error) {
	doc := Inspect(markdown, meta)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// Inspect extracts the DocJSON structure without serializing it.
func Inspect(markdown string, meta core.DocMetadata) core.DocJSON {
	meta.Bytes = len(markdown)
	headings := toc.Headings(markdown)
	prose := proseLines(markdown)

	fences := mdscan.Fences(markdown)
	var langs []string
	seen := make(map[string]bool)
	for _, f := range fences {
		if f.Lang != "" && !seen[f.Lang] {
			seen[f.Lang] = true
			langs = append(langs, f.Lang)
		}
	}

	images := extractImages(prose)
	remote := 0
	for _, img := range images {
		if links.ValidImageRef(img.Href) && links.IsImageAsset(img.Href) {
			remote++
		}
	}

	return core.DocJSON{
		Metadata: meta,
		Content: core.DocContent{
			Markdown: markdown,
			Sections: buildSections(markdown, headings),
		},
		Structure: core.DocStructure{
			Headings:      headings,
			Links:         extractLinks(prose),
			Images:        images,
			RemoteImages:  remote,
			Autolinks:     extractAutolinks(markdown),
			CodeBlocks:    len(fences),
			CodeLanguages: langs,
			Tables:        countTables(prose),
			Lists:         countLists(prose),
			TaskItems:     countTaskItems(prose),
		},
	}
}

// --- Markdown parsing helpers ---

// proseLines drops fenced code so the regex helpers only see prose.
func proseLines(md string) string {
	var b strings.Builder
	for _, l := range mdscan.Lines(md) {
		if !l.InFence {
			b.WriteString(l.Text)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// linkRegex matches Markdown links [text](url), but not images.
var linkRegex = regexp.MustCompile(`(^|[^!])\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)

// imageRegex matches Markdown images ![alt](url "title").
var imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+"[^"]*")?\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	out := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		out = append(out, core.Link{
			Text: m[2],
			Href: m[3],
		})
	}
	return out
}

func extractImages(md string) []core.Link {
	matches := imageRegex.FindAllStringSubmatch(md, -1)
	images := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		images = append(images, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return images
}

// bareURLRegex matches URLs written without link syntax.
var bareURLRegex = regexp.MustCompile(`(?:^|[\s])(https?://[^\s<>()\[\]]+)`)

// extractAutolinks returns the bare URLs outside code, normalized and
// deduplicated in first-seen order.
func extractAutolinks(md string) []string {
	var urls []string
	for _, m := range bareURLRegex.FindAllStringSubmatch(mdscan.StripCode(md), -1) {
		urls = append(urls, strings.TrimRight(m[1], ".,;:!?"))
	}
	if len(urls) == 0 {
		return nil
	}
	return links.Dedupe(urls)
}

func buildSections(md string, headings []core.Heading) []core.Section {
	if len(headings) == 0 {
		return nil
	}

	sections := make([]core.Section, 0, len(headings))
	headingIdx := 0

	var currentSection *core.Section
	var sectionLines []string

	for _, line := range mdscan.Lines(md) {
		if _, ok := mdscan.ParseHeading(line.Text); ok && !line.InFence && headingIdx < len(headings) {
			// Flush previous section.
			if currentSection != nil {
				currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
				sections = append(sections, *currentSection)
			}
			currentSection = &core.Section{
				Heading: headings[headingIdx].Text,
				Level:   headings[headingIdx].Level,
			}
			sectionLines = nil
			headingIdx++
		} else if currentSection != nil {
			sectionLines = append(sectionLines, line.Text)
		}
	}
	// Flush last section.
	if currentSection != nil {
		currentSection.Text = strings.TrimSpace(strings.Join(sectionLines, "\n"))
		sections = append(sections, *currentSection)
	}

	return sections
}

// countTables counts Markdown tables by looking for delimiter rows (|---|).
var tableRowRegex = regexp.MustCompile(`(?m)^\s*\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`)

func countTables(md string) int {
	return len(tableRowRegex.FindAllString(md, -1))
}

// countLists counts list items (lines starting with -, * or 1.).
var listItemRegex = regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+\.)[ \t]`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

// countTaskItems counts GFM task list items, checked or not.
var taskItemRegex = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+\[[ xX]\][ \t]`)

func countTaskItems(md string) int {
	return len(taskItemRegex.FindAllString(md, -1))
}
