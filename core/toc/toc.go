// Package toc builds the table-of-contents tree of a markdown document,
// with anchors matching the heading ids of the rendered HTML.
package toc

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/mdfixtures/core"
	"github.com/gaurav-prasanna/mdfixtures/core/gfm"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Node is one entry of the tree. The root is synthetic: Level 0, no text.
type Node struct {
	Heading  core.Heading
	Children []*Node
}

// Build arranges headings into a tree. Each heading becomes a child of the
// closest preceding heading with a lower level; a heading that skips levels
// (an H4 directly under an H2) attaches to that closest ancestor.
// Anchors are assigned with Anchors before the tree is built.
func Build(headings []core.Heading) *Node {
	return build(Anchors(headings))
}

// FromMarkdown builds the tree for a markdown document. Headings and their
// anchors are the ones the HTML renderer produces for the same source.
func FromMarkdown(md string) *Node {
	return build(Headings(md))
}

func build(headings []core.Heading) *Node {
	root := &Node{}
	stack := []*Node{root}

	for _, h := range headings {
		for len(stack) > 1 && stack[len(stack)-1].Heading.Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		n := &Node{Heading: h}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, n)
		stack = append(stack, n)
	}
	return root
}

var gm = gfm.New()

// Headings parses source with the shared GFM parser and returns every heading
// with the id goldmark assigned to it.
func Headings(source string) []core.Heading {
	src := []byte(source)
	doc := gm.Parser().Parse(text.NewReader(src))

	var out []core.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		heading := core.Heading{Level: h.Level, Text: headingText(h, src)}
		if id, ok := h.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				heading.Anchor = string(b)
			}
		}
		out = append(out, heading)
		return ast.WalkSkipChildren, nil
	})
	return out
}

// headingText is the raw source of the heading's content, lines joined.
func headingText(h *ast.Heading, src []byte) string {
	lines := h.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimSpace(string(seg.Value(src))))
	}
	return strings.Join(parts, " ")
}

// Anchors returns a copy of headings with anchors assigned by goldmark's id
// generator. An anchor already issued in the document, including a literal
// heading that looks like a suffixed one, gets the next free -1, -2, ...
func Anchors(headings []core.Heading) []core.Heading {
	ids := parser.NewContext().IDs()
	out := make([]core.Heading, len(headings))
	for i, h := range headings {
		h.Anchor = string(ids.Generate([]byte(h.Text), ast.KindHeading))
		out[i] = h
	}
	return out
}

// Slug converts heading text to the anchor goldmark would give it as the
// first heading of a document: ASCII letters and digits lower-cased, spaces,
// hyphens and underscores become hyphens, everything else is dropped.
func Slug(heading string) string {
	return string(parser.NewContext().IDs().Generate([]byte(heading), ast.KindHeading))
}

// Depth is the number of heading levels below n. A leaf has depth 0.
func (n *Node) Depth() int {
	max := 0
	for _, c := range n.Children {
		if d := c.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}

// Len is the number of headings in the subtree, excluding n itself.
func (n *Node) Len() int {
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Len()
	}
	return total
}

// Walk visits every heading below n depth-first, in document order.
// depth is 1 for n's children.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 1)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	for _, c := range n.Children {
		fn(c, depth)
		c.walk(fn, depth+1)
	}
}

// Markdown renders the subtree as a nested list of anchor links.
func (n *Node) Markdown() string {
	var b strings.Builder
	n.Walk(func(node *Node, depth int) {
		b.WriteString(strings.Repeat("  ", depth-1))
		fmt.Fprintf(&b, "- [%s](#%s)\n", node.Heading.Text, node.Heading.Anchor)
	})
	return b.String()
}

// AnchorSet returns the set of anchors in the subtree.
func (n *Node) AnchorSet() map[string]bool {
	set := make(map[string]bool)
	n.Walk(func(node *Node, _ int) {
		set[node.Heading.Anchor] = true
	})
	return set
}
