package segment

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// ErrorKind doubles as the oops code of the wrapping error.
type ErrorKind string

const (
	ErrUnknownDirective         ErrorKind = "UNKNOWN_DIRECTIVE"
	ErrUnterminatedBlockComment ErrorKind = "UNTERMINATED_BLOCK_COMMENT"
)

// ParseError reports a fatal condition found while segmenting a file.
type ParseError struct {
	Kind    ErrorKind
	File    string
	Line    int
	Excerpt string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error, file: %s, line %d: %s\n%s", e.File, e.Line, e.Message, e.Excerpt)
}

// AsParseError extracts the ParseError from an error chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func wrapParseError(pe *ParseError) error {
	builder := oops.
		Code(string(pe.Kind)).
		With("file", pe.File).
		With("line", pe.Line)

	switch pe.Kind {
	case ErrUnknownDirective:
		builder = builder.Hint("Supported line flags are //+ignore+ and //+clear+")
	case ErrUnterminatedBlockComment:
		builder = builder.Hint("Close the block comment with */")
	}

	return builder.Wrap(pe)
}
