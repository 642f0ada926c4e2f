package weave_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/g5becks/solcco/internal/language"
	"github.com/g5becks/solcco/internal/segment"
	"github.com/g5becks/solcco/internal/slug"
	"github.com/g5becks/solcco/internal/weave"
)

const tokenSource = `// SPDX-License-Identifier: MIT
/*
   # Token

   A simple token.
*/
contract Token {
  // ## Overview
  uint supply;
}
// ## Overview
`

func TestRunBuildsFilesAndTOC(t *testing.T) {
	t.Parallel()

	var events []weave.Event
	doc, err := weave.Run([]weave.Input{
		{File: "Token.sol", Content: tokenSource},
		{File: "lib.js", Content: "// # Overview\nfunction f() {}\n"},
	}, weave.Options{
		OnEvent: func(e weave.Event) { events = append(events, e) },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantTOC := []slug.TocEntry{
		{Title: "Token.sol", Slug: "token.sol", Tag: slug.TagFile},
		{Title: "Token", Slug: "token.sol-token", Tag: "h1"},
		{Title: "Overview", Slug: "token.sol-overview", Tag: "h2"},
		{Title: "Overview", Slug: "token.sol-overview-0", Tag: "h2"},
		{Title: "lib.js", Slug: "lib.js", Tag: slug.TagFile},
		{Title: "Overview", Slug: "lib.js-overview", Tag: "h1"},
	}
	if diff := cmp.Diff(wantTOC, doc.TOC); diff != "" {
		t.Fatalf("TOC mismatch (-want +got):\n%s", diff)
	}

	if len(doc.Files) != 2 {
		t.Fatalf("len(Files) = %d, want 2", len(doc.Files))
	}

	token := doc.Files[0]
	if token.FileSlug != "token.sol" || token.Language.Name != "solidity" {
		t.Fatalf("Files[0] = %q (%s), want token.sol (solidity)", token.FileSlug, token.Language.Name)
	}
	if len(token.Packs) != 3 {
		t.Fatalf("len(Packs) = %d, want 3", len(token.Packs))
	}

	first := token.Packs[0]
	if first.Code != "contract Token {" || first.Gutter != "7" {
		t.Fatalf("Packs[0] code = %q gutter = %q", first.Code, first.Gutter)
	}
	if !strings.Contains(first.BlockCommentHTML, `id="token.sol-token"`) {
		t.Fatalf("Packs[0].BlockCommentHTML = %q, expected anchored heading", first.BlockCommentHTML)
	}

	second := token.Packs[1]
	if second.Code != "  uint supply;\n}" || second.Gutter != "9\n10" {
		t.Fatalf("Packs[1] code = %q gutter = %q", second.Code, second.Gutter)
	}

	trailing := token.Packs[2]
	if trailing.HasCode() || trailing.Gutter != "" || trailing.CodeHTML != "" {
		t.Fatalf("Packs[2] = %+v, want no code panel", trailing)
	}

	wantEvents := []weave.Event{
		{File: "Token.sol", Language: token.Language, Segments: 5, Packs: 3},
		{File: "lib.js", Language: doc.Files[1].Language, Segments: 2, Packs: 1},
	}
	if diff := cmp.Diff(wantEvents, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestRunHonorsMaxHeadingLevel(t *testing.T) {
	t.Parallel()

	doc, err := weave.Run([]weave.Input{
		{File: "a.sol", Content: "// # Top\n// ## Sub\nx;\n"},
	}, weave.Options{MaxHeadingLevel: 1})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantTOC := []slug.TocEntry{
		{Title: "a.sol", Slug: "a.sol", Tag: slug.TagFile},
		{Title: "Top", Slug: "a.sol-top", Tag: "h1"},
	}
	if diff := cmp.Diff(wantTOC, doc.TOC); diff != "" {
		t.Fatalf("TOC mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAbortsOnUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	doc, err := weave.Run([]weave.Input{
		{File: "a.sol", Content: "x;\n"},
		{File: "notes.txt", Content: "hello\n"},
	}, weave.Options{})
	if doc != nil {
		t.Fatalf("Run() document = %+v, want nil", doc)
	}

	var unsupported *language.UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Run() error = %v, want UnsupportedError", err)
	}
}

func TestRunAbortsOnParseError(t *testing.T) {
	t.Parallel()

	_, err := weave.Run([]weave.Input{
		{File: "ok.sol", Content: "x;\n"},
		{File: "bad.sol", Content: "x;\n//+nope+\n"},
	}, weave.Options{})

	pe, ok := segment.AsParseError(err)
	if !ok {
		t.Fatalf("Run() error = %v, want ParseError", err)
	}
	if pe.File != "bad.sol" || pe.Line != 2 || pe.Kind != segment.ErrUnknownDirective {
		t.Fatalf("ParseError = %+v, want bad.sol line 2 unknown directive", pe)
	}
}

func TestRunUsesExtraLanguages(t *testing.T) {
	t.Parallel()

	doc, err := weave.Run([]weave.Input{
		{File: "main.go", Content: "// Package main.\npackage main\n"},
	}, weave.Options{Languages: language.NewRegistry(map[string]string{".go": "go"})})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := doc.Files[0].Packs[0].Code; got != "package main" {
		t.Fatalf("Code = %q, want %q", got, "package main")
	}
}

func TestLex(t *testing.T) {
	t.Parallel()

	lang, segments, err := weave.Lex(weave.Input{File: "a.js", Content: "// doc\nf();\n"}, nil)
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if lang.Name != "javascript" {
		t.Fatalf("Language = %q, want javascript", lang.Name)
	}
	if len(segments) != 2 {
		t.Fatalf("len(segments) = %d, want 2", len(segments))
	}
}
