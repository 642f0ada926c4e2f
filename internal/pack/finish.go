package pack

import (
	"strconv"
	"strings"
)

const commentSeparator = "\n\n"

// Renderer turns comment markdown into HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// Highlighter turns a code block into highlighted HTML.
type Highlighter interface {
	Highlight(code string) (string, error)
}

// Finished is a pack ready for a template. Code fields are empty when the
// pack's code is whitespace only.
type Finished struct {
	StartLine        int    `json:"startLine"`
	Code             string `json:"code"`
	Gutter           string `json:"gutter"`
	CodeHTML         string `json:"codeHtml"`
	BlockComment     string `json:"blockComment"`
	LineComment      string `json:"lineComment"`
	BlockCommentHTML string `json:"blockCommentHtml"`
	LineCommentHTML  string `json:"lineCommentHtml"`
}

// HasCode reports whether the pack contributes a code panel.
func (f Finished) HasCode() bool {
	return f.Code != ""
}

// Finish renders the comments of every pack in order, block comments before
// line comments, then highlights its code.
func Finish(packs []Pack, renderer Renderer, highlighter Highlighter) ([]Finished, error) {
	finished := make([]Finished, 0, len(packs))

	for _, p := range packs {
		f, err := finishOne(p, renderer, highlighter)
		if err != nil {
			return nil, err
		}
		finished = append(finished, f)
	}

	return finished, nil
}

func finishOne(p Pack, renderer Renderer, highlighter Highlighter) (Finished, error) {
	f := Finished{
		StartLine:    p.StartLine,
		BlockComment: strings.Join(p.BlockComments, commentSeparator),
		LineComment:  strings.Join(p.LineComments, commentSeparator),
	}

	var err error
	if f.BlockCommentHTML, err = renderer.Render(f.BlockComment); err != nil {
		return Finished{}, err
	}
	if f.LineCommentHTML, err = renderer.Render(f.LineComment); err != nil {
		return Finished{}, err
	}

	code := JoinCode(p.CodeLines)
	if strings.TrimSpace(code) == "" {
		return f, nil
	}

	f.Code = code
	f.Gutter = Gutter(p.StartLine, code)
	if f.CodeHTML, err = highlighter.Highlight(code); err != nil {
		return Finished{}, err
	}

	return f, nil
}

// JoinCode concatenates code lines and drops a single trailing line
// terminator.
func JoinCode(lines []string) string {
	code := strings.Join(lines, "")
	if trimmed, ok := strings.CutSuffix(code, "\r\n"); ok {
		return trimmed
	}
	return strings.TrimSuffix(code, "\n")
}

// Gutter numbers each line of code consecutively from start.
func Gutter(start int, code string) string {
	count := strings.Count(code, "\n") + 1
	numbers := make([]string, count)
	for i := range numbers {
		numbers[i] = strconv.Itoa(start + i)
	}
	return strings.Join(numbers, "\n")
}
