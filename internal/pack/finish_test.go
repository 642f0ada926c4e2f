package pack_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/g5becks/solcco/internal/pack"
)

type recordingRenderer struct {
	calls []string
}

func (r *recordingRenderer) Render(markdown string) (string, error) {
	r.calls = append(r.calls, markdown)
	if markdown == "" {
		return "", nil
	}
	return "<p>" + markdown + "</p>", nil
}

type wrapHighlighter struct {
	err error
}

func (h wrapHighlighter) Highlight(code string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "<hl>" + code + "</hl>", nil
}

func TestFinish(t *testing.T) {
	t.Parallel()

	renderer := &recordingRenderer{}
	packs := []pack.Pack{
		{
			StartLine:     4,
			CodeLines:     []string{"a;\n", "b;\n"},
			LineComments:  []string{"one", "two"},
			BlockComments: []string{"block"},
		},
		{
			StartLine:    9,
			CodeLines:    []string{"\n\t\n"},
			LineComments: []string{"trailing"},
		},
	}

	got, err := pack.Finish(packs, renderer, wrapHighlighter{})
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	want := []pack.Finished{
		{
			StartLine:        4,
			Code:             "a;\nb;",
			Gutter:           "4\n5",
			CodeHTML:         "<hl>a;\nb;</hl>",
			BlockComment:     "block",
			LineComment:      "one\n\ntwo",
			BlockCommentHTML: "<p>block</p>",
			LineCommentHTML:  "<p>one\n\ntwo</p>",
		},
		{
			StartLine:       9,
			LineComment:     "trailing",
			LineCommentHTML: "<p>trailing</p>",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Finish() mismatch (-want +got):\n%s", diff)
	}

	wantCalls := []string{"block", "one\n\ntwo", "", "trailing"}
	if diff := cmp.Diff(wantCalls, renderer.calls); diff != "" {
		t.Fatalf("render order mismatch (-want +got):\n%s", diff)
	}

	if got[1].HasCode() {
		t.Fatalf("whitespace-only pack HasCode() = true, want false")
	}
}

func TestFinishPropagatesHighlightError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	packs := []pack.Pack{{StartLine: 1, CodeLines: []string{"x;\n"}}}

	_, err := pack.Finish(packs, &recordingRenderer{}, wrapHighlighter{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("Finish() error = %v, want %v", err, boom)
	}
}

func TestJoinCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "single trailing newline dropped", lines: []string{"a\n", "b\n"}, want: "a\nb"},
		{name: "only one newline dropped", lines: []string{"a\n\n"}, want: "a\n"},
		{name: "crlf dropped", lines: []string{"a\r\n"}, want: "a"},
		{name: "no terminator", lines: []string{"a"}, want: "a"},
		{name: "empty", lines: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pack.JoinCode(tt.lines); got != tt.want {
				t.Fatalf("JoinCode(%q) = %q, want %q", tt.lines, got, tt.want)
			}
		})
	}
}

func TestGutter(t *testing.T) {
	t.Parallel()

	if got := pack.Gutter(7, "a\nb\nc"); got != "7\n8\n9" {
		t.Fatalf("Gutter() = %q, want %q", got, "7\n8\n9")
	}
	if got := pack.Gutter(1, "single"); got != "1" {
		t.Fatalf("Gutter() = %q, want %q", got, "1")
	}
}
