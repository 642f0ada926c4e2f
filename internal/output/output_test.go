package output_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g5becks/solcco/internal/output"
	"github.com/g5becks/solcco/internal/weave"
)

func weaveDoc(t *testing.T) *weave.Document {
	t.Helper()

	doc, err := weave.Run([]weave.Input{
		{File: "Token.sol", Content: "/* # Token */\ncontract Token {}\n// ## Notes\n// a < b\n"},
		{File: "lib.js", Content: "f();\n//+clear+\ng();\n"},
	}, weave.Options{})
	if err != nil {
		t.Fatalf("weave.Run() error = %v", err)
	}

	return doc
}

func TestCode(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := output.Code(&buf, weaveDoc(t)); err != nil {
		t.Fatalf("Code() error = %v", err)
	}

	want := `Token.sol
Token
Notes
lib.js

================
Token.sol
================
contract Token {}
================
lib.js
================
f();
g();
`
	if buf.String() != want {
		t.Fatalf("Code() = %q, want %q", buf.String(), want)
	}
}

func TestHTML(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := output.HTML(&buf, weaveDoc(t), "Token <docs>"); err != nil {
		t.Fatalf("HTML() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"<title>Token &lt;docs&gt;</title>",
		`<li class="toc-file"><a href="#token.sol">Token.sol</a></li>`,
		`<li class="toc-h1"><a href="#token.sol-token">Token</a></li>`,
		`<li class="toc-h2"><a href="#token.sol-notes">Notes</a></li>`,
		`<section class="file" id="lib.js">`,
		`<h1 id="token.sol-token">Token</h1>`,
		`<p>a &lt; b</p>`,
		`<pre class="gutter">2</pre>`,
		".chroma",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("HTML() missing %q in:\n%s", want, got)
		}
	}
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	if err := output.JSON(&buf, weaveDoc(t)); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var decoded struct {
		Files []struct {
			FileSlug string `json:"fileSlug"`
			Packs    []struct {
				Code string `json:"code"`
			} `json:"packs"`
		} `json:"files"`
		TOC []struct {
			Slug string `json:"slug"`
			Tag  string `json:"tag"`
		} `json:"toc"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if len(decoded.Files) != 2 || decoded.Files[1].FileSlug != "lib.js" {
		t.Fatalf("decoded files = %+v", decoded.Files)
	}
	if got := decoded.Files[0].Packs[0].Code; got != "contract Token {}" {
		t.Fatalf("first pack code = %q", got)
	}
	if len(decoded.TOC) != 4 || decoded.TOC[2].Tag != "h2" {
		t.Fatalf("decoded toc = %+v", decoded.TOC)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "site", "out.html")

	if err := output.WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := output.WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile() overwrite error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(content) != "second" {
		t.Fatalf("content = %q, want %q", content, "second")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want only the output file", len(entries))
	}
}
