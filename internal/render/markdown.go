// Package render turns comment prose into HTML with gomarkdown and code into
// highlighted HTML with chroma.
package render

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const parserExtensions = parser.CommonExtensions | parser.SuperSubscript

// HeadingFunc is called for every heading within the level limit, in
// document order. It returns the anchor id for the heading.
type HeadingFunc func(title string, level int) string

// Markdown renders comment markdown and reports its headings.
type Markdown struct {
	maxLevel  int
	onHeading HeadingFunc
}

// NewMarkdown returns a renderer that anchors headings up to maxLevel.
// A nil onHeading leaves every heading without an anchor.
func NewMarkdown(maxLevel int, onHeading HeadingFunc) *Markdown {
	return &Markdown{
		maxLevel:  maxLevel,
		onHeading: onHeading,
	}
}

func (m *Markdown) Render(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	// gomarkdown parsers hold per-document state and are not reusable.
	doc := parser.NewWithExtensions(parserExtensions).Parse([]byte(src))

	if m.onHeading != nil {
		ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
			if !entering {
				return ast.GoToNext
			}

			heading, ok := node.(*ast.Heading)
			if !ok || heading.Level > m.maxLevel {
				return ast.GoToNext
			}

			heading.HeadingID = m.onHeading(extractText(heading), heading.Level)
			return ast.SkipChildren
		})
	}

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	})

	return string(markdown.Render(doc, renderer)), nil
}

func extractText(node ast.Node) string {
	var buf strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch leaf := n.(type) {
		case *ast.Text:
			buf.Write(leaf.Literal)
		case *ast.Code:
			buf.Write(leaf.Literal)
		}
		return ast.GoToNext
	})
	// Normalize whitespace - replace multiple spaces/newlines with single space
	return strings.Join(strings.Fields(buf.String()), " ")
}
