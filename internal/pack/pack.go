// Package pack regroups a file's segment stream into packs, the units that
// become one documentation card: the comments and the code they document.
package pack

import (
	"strings"

	"github.com/g5becks/solcco/internal/segment"
)

// Pack groups the comments of one card with the code that follows them.
// Once Closed is set the pack never receives more code.
type Pack struct {
	StartLine     int      `json:"startLine"`
	CodeLines     []string `json:"codeLines"`
	LineComments  []string `json:"lineComments"`
	BlockComments []string `json:"blockComments"`
	Closed        bool     `json:"closed"`
}

// HasCode reports whether any code segment was assigned to the pack.
func (p *Pack) HasCode() bool {
	return len(p.CodeLines) > 0
}

// Build packs segments in file order. The result always holds at least one
// pack, possibly empty.
//
// Consecutive comments share a pack. Once a pack holds code, or was closed by
// a clear marker, the next comment starts a new pack.
func Build(segments []segment.Segment) []Pack {
	packs := []*Pack{{}}

	for _, seg := range segments {
		last := packs[len(packs)-1]

		switch seg.Kind {
		case segment.KindCode:
			if last.Closed {
				last = &Pack{}
				packs = append(packs, last)
			}
			if !last.HasCode() {
				last.StartLine = seg.Line
			}
			last.CodeLines = append(last.CodeLines, seg.Content)

		case segment.KindClear:
			last.Closed = true

		case segment.KindLineComment, segment.KindBlockComment:
			if last.HasCode() || last.Closed {
				last.Closed = true
				last = &Pack{}
				packs = append(packs, last)
			}

			content := trimLeadingBlankLines(seg.Content)
			if seg.Kind == segment.KindLineComment {
				last.LineComments = append(last.LineComments, content)
			} else {
				last.BlockComments = append(last.BlockComments, content)
			}
		}
	}

	out := make([]Pack, len(packs))
	for i, p := range packs {
		out[i] = *p
	}

	return out
}

func trimLeadingBlankLines(s string) string {
	return strings.TrimLeft(s, "\r\n")
}
