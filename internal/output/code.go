package output

import (
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/samber/oops"

	"github.com/g5becks/solcco/internal/weave"
)

// Code view: every TOC title, then each file behind a banner with the code of
// its packs, comments stripped. Packs without code are skipped.
const codeSource = `{{ $rule := repeat 16 "=" -}}
{{ range .TOC }}{{ .Title }}
{{ end }}
{{ range .Files }}{{ $rule }}
{{ .File }}
{{ $rule }}
{{ range .Packs }}{{ if .HasCode }}{{ .Code }}
{{ end }}{{ end }}{{ end }}`

//nolint:gochecknoglobals // parsed once at init
var codeTemplate = template.Must(template.New("code").Funcs(sprig.TxtFuncMap()).Parse(codeSource))

func Code(w io.Writer, doc *weave.Document) error {
	if err := codeTemplate.Execute(w, doc); err != nil {
		return oops.
			Code("RENDER_FAILED").
			Wrapf(err, "rendering code view")
	}

	return nil
}
