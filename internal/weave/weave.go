// Package weave runs the documentation pipeline over a list of files:
// segment, pack, then finish each pack, collecting the table of contents on
// the side.
package weave

import (
	"github.com/samber/oops"

	"github.com/g5becks/solcco/internal/language"
	"github.com/g5becks/solcco/internal/pack"
	"github.com/g5becks/solcco/internal/render"
	"github.com/g5becks/solcco/internal/segment"
	"github.com/g5becks/solcco/internal/slug"
)

const DefaultMaxHeadingLevel = 2

// Input is one file to document. File labels the output and selects the
// language by extension.
type Input struct {
	File    string
	Content string
}

// Event reports a finished file, for progress output.
type Event struct {
	File     string
	Language language.Language
	Segments int
	Packs    int
}

type Options struct {
	MaxHeadingLevel int
	Style           string
	Languages       *language.Registry
	OnEvent         func(Event)
}

type File struct {
	FileSlug string            `json:"fileSlug"`
	File     string            `json:"file"`
	Language language.Language `json:"language"`
	Packs    []pack.Finished   `json:"packs"`
}

// Document is the result of one run.
type Document struct {
	Files []File          `json:"files"`
	TOC   []slug.TocEntry `json:"toc"`
	Style string          `json:"style"`
}

// Run documents inputs in order. The first error aborts the run; no partial
// document is returned.
func Run(inputs []Input, opts Options) (*Document, error) {
	opts = withDefaults(opts)

	w := &weaver{
		opts:        opts,
		slugs:       slug.NewAllocator(),
		highlighter: make(map[string]*render.Highlighter),
	}

	files := make([]File, 0, len(inputs))
	for _, in := range inputs {
		f, err := w.file(in)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return &Document{
		Files: files,
		TOC:   w.slugs.TOC(),
		Style: opts.Style,
	}, nil
}

// Lex resolves the language of in and segments it without packing.
func Lex(in Input, registry *language.Registry) (language.Language, []segment.Segment, error) {
	if registry == nil {
		registry = language.NewRegistry(nil)
	}

	lang, err := registry.ForFile(in.File)
	if err != nil {
		return language.Language{}, nil, err
	}

	segments, err := segment.Lex(in.File, in.Content)
	if err != nil {
		return language.Language{}, nil, err
	}

	return lang, segments, nil
}

type weaver struct {
	opts        Options
	slugs       *slug.Allocator
	highlighter map[string]*render.Highlighter
}

func (w *weaver) file(in Input) (File, error) {
	fileSlug := w.slugs.File(in.File)

	lang, segments, err := Lex(in, w.opts.Languages)
	if err != nil {
		return File{}, err
	}

	packs := pack.Build(segments)

	md := render.NewMarkdown(w.opts.MaxHeadingLevel, func(title string, level int) string {
		return w.slugs.Heading(fileSlug, title, level)
	})

	finished, err := pack.Finish(packs, md, w.highlighterFor(lang))
	if err != nil {
		return File{}, oops.
			With("file", in.File).
			Wrapf(err, "rendering %s", in.File)
	}

	if w.opts.OnEvent != nil {
		w.opts.OnEvent(Event{
			File:     in.File,
			Language: lang,
			Segments: len(segments),
			Packs:    len(finished),
		})
	}

	return File{
		FileSlug: fileSlug,
		File:     in.File,
		Language: lang,
		Packs:    finished,
	}, nil
}

func (w *weaver) highlighterFor(lang language.Language) *render.Highlighter {
	if h, ok := w.highlighter[lang.Lexer]; ok {
		return h
	}

	h := render.NewHighlighter(lang.Lexer, w.opts.Style)
	w.highlighter[lang.Lexer] = h
	return h
}

func withDefaults(opts Options) Options {
	if opts.MaxHeadingLevel <= 0 {
		opts.MaxHeadingLevel = DefaultMaxHeadingLevel
	}
	if opts.Style == "" {
		opts.Style = render.DefaultStyle
	}
	if opts.Languages == nil {
		opts.Languages = language.NewRegistry(nil)
	}
	return opts
}
