// Package synth is the procedural document builder. It synthesizes markdown
// documents of caller-controlled size by repeating one fixed section
// template, so tests can assert on the structure while consumers get a
// document large enough to exercise incremental and virtualized rendering.
//
// Output is a pure function of the section count: no timestamps, random
// values or environment-dependent text ever reach the template.
package synth

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSections is the section count used by BuildDefault.
const DefaultSections uint = 18

// ErrInvalidSections is returned by BuildInt for negative section counts.
var ErrInvalidSections = errors.New("invalid section count")

// HeadingPattern matches the heading line of one synthetic section and
// captures its 1-based index.
var HeadingPattern = regexp.MustCompile(`(?m)^## Section (\d+)$`)

// The template is split around the index so Section can write it without
// fmt. No digits appear anywhere except where the index is substituted.
const (
	headingPrefix = "## Section "
	paragraph     = "This section was generated to exercise long-document handling " +
		"such as incremental parsing and virtualized scrolling."
	listLine   = "- Alpha · Beta · Gamma"
	codeOpen   = "```js"
	assignment = "const section = "
	logPrefix  = `console.log("rendered section `
	codeClose  = "```"
	divider    = "---"
)

// Build returns a document of n sections in ascending index order.
// Build(0) is the empty document.
func Build(n uint) string {
	if n == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(growHint(n))
	for i := uint(1); i <= n; i++ {
		writeSection(&b, i)
	}
	return b.String()
}

// BuildDefault is Build(DefaultSections).
func BuildDefault() string {
	return Build(DefaultSections)
}

// BuildInt is Build for callers holding a signed count, such as flag or
// config values. Negative counts are rejected before anything is built.
func BuildInt(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidSections, n)
	}
	return Build(uint(n)), nil
}

// Section returns the single section with the given 1-based index, including
// its trailing blank-line separator. Index 0 is not a section.
func Section(index uint) string {
	if index == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(sectionSize(index))
	writeSection(&b, index)
	return b.String()
}

// Count returns the number of synthetic section headings in doc.
func Count(doc string) int {
	return len(HeadingPattern.FindAllStringIndex(doc, -1))
}

func writeSection(b *strings.Builder, index uint) {
	idx := strconv.FormatUint(uint64(index), 10)

	b.WriteString(headingPrefix)
	b.WriteString(idx)
	b.WriteString("\n\n")

	b.WriteString(paragraph)
	b.WriteString("\n\n")

	b.WriteString(listLine)
	b.WriteString("\n\n")

	b.WriteString(codeOpen)
	b.WriteByte('\n')
	b.WriteString(assignment)
	b.WriteString(idx)
	b.WriteString(";\n")
	b.WriteString(logPrefix)
	b.WriteString(idx)
	b.WriteString("\");\n")
	b.WriteString(codeClose)
	b.WriteString("\n\n")

	b.WriteString(divider)
	b.WriteString("\n\n")
}

// maxGrowHint caps the up-front allocation; larger documents grow as they
// are written.
const maxGrowHint = 64 << 20

// growHint is the builder capacity to reserve for n sections, capped at
// maxGrowHint and never overflowing.
func growHint(n uint) int {
	per := uint(sectionSize(n))
	if n > maxGrowHint/per {
		return maxGrowHint
	}
	return int(n * per)
}

// sectionSize is an upper bound on the byte length of any section up to
// index n, used to size the builder once.
func sectionSize(n uint) int {
	digits := len(strconv.FormatUint(uint64(n), 10))
	fixed := len(headingPrefix) + len(paragraph) + len(listLine) + len(codeOpen) +
		len(assignment) + len(logPrefix) + len(codeClose) + len(divider)
	// newlines and punctuation written around the fixed parts
	const glue = 17
	return fixed + 3*digits + glue
}
