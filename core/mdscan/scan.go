// Package mdscan walks markdown line by line while tracking fenced code
// blocks, so structural readers (headings, math, code languages) never
// mistake the contents of a code block for document structure.
//
// It is not a markdown parser. It recognizes ATX headings,
// backtick and tilde fences, and inline code spans, which is all the
// inspection tooling needs.
package mdscan

import (
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mdfixtures/core"
)

// Fence is one fenced code block.
type Fence struct {
	Lang string
	Body string
}

var (
	headingRegex    = regexp.MustCompile(`^ {0,3}(#{1,6})(?:[ \t]+(.*?))?(?:[ \t]+#+)?[ \t]*$`)
	fenceOpenRegex  = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})[ \t]*([^`\\s]*)")
	inlineCodeRegex = regexp.MustCompile("`+[^`\n]*`+")
)

// Line is a single source line and whether it sits inside a fenced block.
// Fence delimiter lines themselves are reported with InFence true.
type Line struct {
	Text    string
	InFence bool
}

// Lines splits md into lines, marking the ones that belong to fenced code.
// An unclosed fence runs to the end of the document.
func Lines(md string) []Line {
	raw := strings.Split(md, "\n")
	out := make([]Line, len(raw))

	var marker string
	for i, line := range raw {
		if marker == "" {
			if m := fenceOpenRegex.FindStringSubmatch(line); m != nil {
				marker = m[1]
				out[i] = Line{Text: line, InFence: true}
				continue
			}
			out[i] = Line{Text: line}
			continue
		}

		out[i] = Line{Text: line, InFence: true}
		if isFenceClose(line, marker) {
			marker = ""
		}
	}
	return out
}

// Headings returns the ATX headings outside fenced code, in document order.
func Headings(md string) []core.Heading {
	var headings []core.Heading
	for _, l := range Lines(md) {
		if l.InFence {
			continue
		}
		if h, ok := ParseHeading(l.Text); ok {
			headings = append(headings, h)
		}
	}
	return headings
}

// ParseHeading parses a single ATX heading line.
func ParseHeading(line string) (core.Heading, bool) {
	m := headingRegex.FindStringSubmatch(line)
	if m == nil {
		return core.Heading{}, false
	}
	return core.Heading{Level: len(m[1]), Text: strings.TrimSpace(m[2])}, true
}

// Fences returns every fenced code block in document order.
func Fences(md string) []Fence {
	var (
		fences []Fence
		cur    *Fence
		body   []string
		marker string
	)
	for _, line := range strings.Split(md, "\n") {
		if cur == nil {
			if m := fenceOpenRegex.FindStringSubmatch(line); m != nil {
				marker = m[1]
				cur = &Fence{Lang: m[2]}
				body = body[:0]
			}
			continue
		}
		if isFenceClose(line, marker) {
			cur.Body = strings.Join(body, "\n")
			fences = append(fences, *cur)
			cur = nil
			continue
		}
		body = append(body, line)
	}
	if cur != nil {
		cur.Body = strings.Join(body, "\n")
		fences = append(fences, *cur)
	}
	return fences
}

// StripCode removes fenced blocks and inline code spans, leaving prose.
func StripCode(md string) string {
	var b strings.Builder
	for _, l := range Lines(md) {
		if l.InFence {
			continue
		}
		b.WriteString(inlineCodeRegex.ReplaceAllString(l.Text, ""))
		b.WriteByte('\n')
	}
	return b.String()
}

// isFenceClose reports whether line closes a fence opened with marker: the
// same character, at least as long, nothing but whitespace after it.
func isFenceClose(line, marker string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	trimmed = strings.TrimRight(trimmed, " \t")
	if len(trimmed) < len(marker) {
		return false
	}
	return strings.Trim(trimmed, marker[:1]) == ""
}
