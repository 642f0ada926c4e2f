package render

import (
	"bytes"
	"io"
	"slices"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/samber/oops"
)

const DefaultStyle = "github"

// Highlighter highlights code of one language. Output uses CSS classes; the
// matching stylesheet comes from WriteCSS.
type Highlighter struct {
	lexerName string
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter returns a highlighter for the named chroma lexer. Unknown
// lexers fall back to plain text.
func NewHighlighter(lexerName, styleName string) *Highlighter {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexerName: lexerName,
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(styleName),
		formatter: newFormatter(),
	}
}

func (h *Highlighter) Highlight(code string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return "", oops.
			Code("RENDER_FAILED").
			With("lexer", h.lexerName).
			Wrapf(err, "tokenising code")
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", oops.
			Code("RENDER_FAILED").
			With("lexer", h.lexerName).
			Wrapf(err, "formatting highlighted code")
	}

	return buf.String(), nil
}

// WriteCSS writes the stylesheet for the named chroma style.
func WriteCSS(w io.Writer, styleName string) error {
	if err := newFormatter().WriteCSS(w, styles.Get(styleName)); err != nil {
		return oops.
			Code("RENDER_FAILED").
			With("style", styleName).
			Wrapf(err, "writing highlight stylesheet")
	}
	return nil
}

// LexerExists reports whether chroma knows the lexer name or alias.
func LexerExists(name string) bool {
	return lexers.Get(name) != nil
}

// StyleExists reports whether chroma has a style registered under name.
func StyleExists(name string) bool {
	return slices.Contains(styles.Names(), name)
}

func newFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(true),
	)
}
