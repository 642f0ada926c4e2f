// Package output renders a woven document as an HTML page, as code only, or
// as JSON, and writes results to disk.
package output

import (
	_ "embed"
	"html/template"
	"io"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/samber/oops"

	"github.com/g5becks/solcco/internal/render"
	"github.com/g5becks/solcco/internal/slug"
	"github.com/g5becks/solcco/internal/weave"
)

//go:embed templates/page.html.tmpl
var pageSource string

//nolint:gochecknoglobals // parsed once at init
var pageTemplate = template.Must(template.New("page").Funcs(htmlFuncs()).Parse(pageSource))

type pageData struct {
	Title string
	CSS   template.CSS
	TOC   []slug.TocEntry
	Files []weave.File
}

func htmlFuncs() template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	// Comment and code HTML comes from the markdown renderer and chroma.
	funcs["safeHTML"] = func(s string) template.HTML {
		return template.HTML(s) //nolint:gosec // produced by our own renderers
	}
	return funcs
}

// HTML writes doc as a standalone page with a table of contents sidebar and
// the highlight stylesheet inlined.
func HTML(w io.Writer, doc *weave.Document, title string) error {
	var css strings.Builder
	if err := render.WriteCSS(&css, doc.Style); err != nil {
		return err
	}

	data := pageData{
		Title: title,
		CSS:   template.CSS(css.String()), //nolint:gosec // generated by chroma
		TOC:   doc.TOC,
		Files: doc.Files,
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return oops.
			Code("RENDER_FAILED").
			Wrapf(err, "rendering html page")
	}

	return nil
}
