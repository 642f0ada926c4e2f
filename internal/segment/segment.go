// Package segment splits annotated source text into an ordered stream of
// code, line comment, block comment and clear segments.
//
// The segmenter is aware of comment markers and string literals only. It does
// not parse the grammar of the source language.
package segment

import (
	"fmt"
	"strings"
)

// Kind identifies what a segment holds.
type Kind int

const (
	KindCode Kind = iota
	KindLineComment
	KindBlockComment
	KindClear
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindLineComment:
		return "lineComment"
	case KindBlockComment:
		return "blockComment"
	case KindClear:
		return "clear"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is a classified span of one file.
//
// Content is what downstream stages consume: comment markers and the
// normalized block comment indentation are already removed. Source is the
// exact input consumed while the segment was built, including markers and any
// SPDX or ignore lines dropped along the way.
type Segment struct {
	Kind    Kind   `json:"kind"`
	Content string `json:"content"`
	Line    int    `json:"line"`
	Source  string `json:"-"`
}

// Reassemble concatenates the Source of every segment. For any successfully
// segmented file the result equals the original text.
func Reassemble(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Source)
	}
	return b.String()
}
