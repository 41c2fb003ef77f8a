// Package render — PDF renderer.
// Converts Markdown into a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks, lists,
// blockquotes and tables (as monospaced rows). Images are rendered as their
// alt text and URL; the renderer never fetches them.
package render

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/mdscan"
	"github.com/jung-kurt/gofpdf"
)

// pdfEpoch is stamped as the creation date so identical input yields
// identical PDF bytes.
var pdfEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.DocMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(meta.Title, true)
	pdf.AddPage()

	// Core fonts are cp1252; translate the UTF-8 source once per line.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title from metadata.
	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(meta.Title), "", "L", false)
		pdf.Ln(4)
	}

	// Document identifier.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr(meta.Kind+": "+meta.Name), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for _, line := range mdscan.Lines(markdown) {
		text := line.Text

		if line.InFence {
			// Fence delimiters only add spacing.
			if fenceDelimRegex.MatchString(text) {
				pdf.Ln(2)
				continue
			}
			// Render code lines with monospace font and background.
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(strings.ReplaceAll(text, "\t", "    ")), "", "L", true)
			continue
		}

		// Skip empty lines (add spacing instead).
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		// Headings.
		if h, ok := mdscan.ParseHeading(text); ok {
			renderHeading(pdf, tr(h.Text), h.Level)
			continue
		}

		// Horizontal rules.
		if ruleRegex.MatchString(trimmed) {
			y := pdf.GetY() + 2
			pdf.Line(10, y, 200, y)
			pdf.Ln(5)
			continue
		}

		// Table rows, delimiter rows dropped.
		if strings.HasPrefix(trimmed, "|") {
			if tableRowRegex.MatchString(trimmed) {
				continue
			}
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
			continue
		}

		// Blockquotes.
		if strings.HasPrefix(trimmed, ">") {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(80, 80, 80)
			quote := strings.TrimSpace(strings.TrimLeft(trimmed, "> "))
			pdf.MultiCell(0, 5, tr("  "+cleanInlineMarkdown(quote)), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		// Task list items.
		if m := pdfTaskRegex.FindStringSubmatch(trimmed); m != nil {
			box := "[ ] "
			if m[1] != " " {
				box = "[x] "
			}
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(box+cleanInlineMarkdown(m[2])), "", "L", false)
			continue
		}

		// List items.
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("- "+cleanInlineMarkdown(trimmed[2:])), "", "L", false)
			continue
		}

		// Numbered list items.
		if numberedRegex.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
			continue
		}

		// Regular paragraph text, including math delimiters as written.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(text)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

var (
	fenceDelimRegex = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
	ruleRegex       = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
	pdfTaskRegex    = regexp.MustCompile(`^[-*+]\s+\[([ xX])\]\s+(.*)$`)
	numberedRegex   = regexp.MustCompile(`^\d+\.\s`)

	boldRegex       = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	italicRegex     = regexp.MustCompile(`(^|\s)\*([^*]+)\*`)
	strikeRegex     = regexp.MustCompile(`~~([^~]+)~~`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	imageLinkRegex  = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)
	textLinkRegex   = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = boldRegex.ReplaceAllString(text, "$1$2")
	text = italicRegex.ReplaceAllString(text, "$1$2")
	text = strikeRegex.ReplaceAllString(text, "$1")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = imageLinkRegex.ReplaceAllString(text, "[image: $1] $2")
	text = textLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
