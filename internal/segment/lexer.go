package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// blockIndentGap is added to the indentation of a block comment opener to get
// the left edge of its body: comment text conventionally starts one space
// after the "/*" marker.
const blockIndentGap = 3

// hws matches one horizontal whitespace rune: any unicode.IsSpace rune other
// than a line terminator.
const hws = `[\t\v\f \x{85}\p{Z}]`

var (
	blockOpenPattern      = regexp.MustCompile(`^` + hws + `*/\*`)
	lineOpenPattern       = regexp.MustCompile(`^` + hws + `*//`)
	spdxPattern           = regexp.MustCompile(`^` + hws + `*//` + hws + `*SPDX-License-Identifier:[^\n]*(?:\n|$)`)
	directivePattern      = regexp.MustCompile(`^` + hws + `*//\+([^\n]*?)\+[^\n]*(?:\n|$)`)
	lineCommentPrefix     = regexp.MustCompile(`^` + hws + `*//` + hws + `*`)
	horizontalSpaceLeader = regexp.MustCompile(`^` + hws + `*`)
)

const (
	flagIgnore = "ignore"
	flagClear  = "clear"
)

type state int

const (
	stateBase state = iota
	stateCode
	stateBlockComment
	stateDone
)

// lexer owns the cursor over one file. The cursor only moves forward.
type lexer struct {
	file string
	text string
	pos  int
	line int

	state  state
	indent int

	buf      strings.Builder
	bufLine  int
	started  bool
	srcStart int

	segments []Segment
}

// Lex segments the text of one file. The file name only labels errors.
func Lex(file, text string) ([]Segment, error) {
	l := &lexer{
		file:  file,
		text:  text,
		line:  1,
		state: stateBase,
	}

	for l.state != stateDone {
		next, err := l.transition()
		if err != nil {
			return nil, err
		}
		l.state = next
	}

	return l.segments, nil
}

func (l *lexer) transition() (state, error) {
	switch l.state {
	case stateBase, stateCode:
		if l.exhausted() {
			l.flush(KindCode)
			l.finish()
			return stateDone, nil
		}
		if n, ok := l.stringLiteral(); ok {
			l.take(n, true)
			return stateCode, nil
		}
		if l.state == stateBase {
			return l.base()
		}
		return l.code()

	case stateBlockComment:
		return l.blockComment()

	case stateDone:
		return stateDone, nil

	default:
		panic(fmt.Sprintf("segment: unknown lexer state %d", l.state))
	}
}

func (l *lexer) base() (state, error) {
	rest := l.rest()

	if m := blockOpenPattern.FindString(rest); m != "" {
		l.flush(KindCode)
		l.startSegment()
		leader := horizontalSpaceLeader.FindString(rest)
		l.indent = utf8.RuneCountInString(leader) + blockIndentGap
		l.take(len(m), false)
		return stateBlockComment, nil
	}

	if lineOpenPattern.MatchString(rest) {
		return l.lineComment()
	}

	r, size := utf8.DecodeRuneInString(rest)
	l.take(size, true)
	if unicode.IsSpace(r) {
		return stateBase, nil
	}
	return stateCode, nil
}

func (l *lexer) lineComment() (state, error) {
	rest := l.rest()

	if m := spdxPattern.FindString(rest); m != "" {
		l.take(len(m), false)
		return stateBase, nil
	}

	if m := directivePattern.FindStringSubmatch(rest); m != nil {
		switch flag := m[1]; flag {
		case flagIgnore:
			l.take(len(m[0]), false)
		case flagClear:
			l.flush(KindCode)
			l.startSegment()
			l.take(len(m[0]), false)
			l.flush(KindClear)
		default:
			return stateBase, l.fail(ErrUnknownDirective, fmt.Sprintf("unknown solcco line comment flag: %s", flag))
		}
		return stateBase, nil
	}

	l.flush(KindCode)
	l.startSegment()
	l.take(len(lineCommentPrefix.FindString(rest)), false)

	body := l.restOfLine()
	l.take(len(strings.TrimSuffix(body, "\r")), true)
	l.takeNewline()
	l.flush(KindLineComment)

	return stateBase, nil
}

func (l *lexer) code() (state, error) {
	rest := l.rest()

	switch {
	case strings.HasPrefix(rest, "/*"):
		end := strings.Index(rest[2:], "*/")
		if end < 0 {
			return stateCode, l.fail(ErrUnterminatedBlockComment, "non terminated block comment")
		}
		l.take(end+4, true)
		return stateCode, nil

	case strings.HasPrefix(rest, "//"):
		l.take(len(l.restOfLine()), true)
		l.takeNewlineInto(true)
		return stateBase, nil

	case strings.HasPrefix(rest, "\r\n"):
		l.take(2, true)
		return stateBase, nil

	case strings.HasPrefix(rest, "\n"):
		l.take(1, true)
		return stateBase, nil
	}

	_, size := utf8.DecodeRuneInString(rest)
	l.take(size, true)
	return stateCode, nil
}

// blockComment is entered at the start of each physical line of a block
// comment, including the remainder of the opener line.
func (l *lexer) blockComment() (state, error) {
	if l.exhausted() {
		return stateBlockComment, l.fail(ErrUnterminatedBlockComment, "non terminated block comment")
	}

	l.take(l.horizontalSpace(l.indent), false)

	line := l.restOfLine()
	if end := strings.Index(line, "*/"); end >= 0 {
		l.take(end, true)
		l.take(2, false)

		trailing := l.horizontalSpace(-1)
		after := l.rest()[trailing:]
		if strings.HasPrefix(after, "\n") || strings.HasPrefix(after, "\r\n") {
			l.take(trailing, false)
			l.takeNewline()
		}

		l.flush(KindBlockComment)
		return stateBase, nil
	}

	l.take(len(line), true)
	l.takeNewlineInto(true)
	return stateBlockComment, nil
}

// stringLiteral reports the length of a quoted literal at the cursor. A quote
// preceded by a backslash does not close the literal. An opening quote with
// no closing quote is not a literal.
func (l *lexer) stringLiteral() (int, bool) {
	rest := l.rest()
	if rest == "" {
		return 0, false
	}

	quote := rest[0]
	if quote != '"' && quote != '\'' {
		return 0, false
	}

	for i := 1; i < len(rest); i++ {
		if rest[i] == quote && rest[i-1] != '\\' {
			return i + 1, true
		}
	}

	return 0, false
}

func (l *lexer) rest() string {
	return l.text[l.pos:]
}

func (l *lexer) exhausted() bool {
	return l.pos >= len(l.text)
}

func (l *lexer) restOfLine() string {
	rest := l.rest()
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// horizontalSpace returns the byte length of up to limit leading horizontal
// whitespace runes at the cursor. A negative limit means no limit.
func (l *lexer) horizontalSpace(limit int) int {
	rest := l.rest()
	n, count := 0, 0
	for n < len(rest) && (limit < 0 || count < limit) {
		r, size := utf8.DecodeRuneInString(rest[n:])
		if r == '\n' || r == '\r' || !unicode.IsSpace(r) {
			break
		}
		n += size
		count++
	}
	return n
}

// take consumes n bytes, advancing the line counter by the newlines consumed.
// When keep is set the bytes are appended to the pending segment.
func (l *lexer) take(n int, keep bool) {
	if n <= 0 {
		return
	}

	span := l.text[l.pos : l.pos+n]
	if keep {
		if !l.started {
			l.startSegment()
		}
		l.buf.WriteString(span)
	}

	l.line += strings.Count(span, "\n")
	l.pos += n
}

func (l *lexer) takeNewline() {
	l.takeNewlineInto(false)
}

func (l *lexer) takeNewlineInto(keep bool) {
	rest := l.rest()
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		l.take(2, keep)
	case strings.HasPrefix(rest, "\n"):
		l.take(1, keep)
	}
}

func (l *lexer) startSegment() {
	l.started = true
	l.bufLine = l.line
}

// flush emits the pending segment. Code is only emitted when something was
// buffered; comment and clear segments are always emitted.
func (l *lexer) flush(kind Kind) {
	if kind == KindCode && l.buf.Len() == 0 {
		l.started = false
		return
	}

	line := l.bufLine
	if !l.started {
		line = l.line
	}

	l.segments = append(l.segments, Segment{
		Kind:    kind,
		Content: l.buf.String(),
		Line:    line,
		Source:  l.text[l.srcStart:l.pos],
	})

	l.srcStart = l.pos
	l.buf.Reset()
	l.started = false
}

// finish hands input consumed after the last emitted segment (dropped SPDX or
// ignore lines) to that segment so no byte of the file goes unaccounted.
func (l *lexer) finish() {
	if l.srcStart >= len(l.text) {
		return
	}

	tail := l.text[l.srcStart:]
	l.srcStart = len(l.text)

	if n := len(l.segments); n > 0 {
		l.segments[n-1].Source += tail
		return
	}

	l.segments = append(l.segments, Segment{
		Kind:   KindCode,
		Line:   1,
		Source: tail,
	})
}

func (l *lexer) fail(kind ErrorKind, msg string) error {
	return wrapParseError(&ParseError{
		Kind:    kind,
		File:    l.file,
		Line:    l.line,
		Excerpt: strings.TrimSuffix(l.restOfLine(), "\r"),
		Message: msg,
	})
}
