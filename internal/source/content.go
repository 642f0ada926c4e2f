package source

import (
	"bytes"
	"unicode/utf8"

	"github.com/samber/oops"
)

func decode(ref Ref, content []byte) (string, error) {
	content = stripBOM(content)

	if isBinary(content) || !utf8.Valid(content) {
		return "", oops.
			Code("READ_FAILED").
			With("input", ref.Location).
			Hint("Only UTF-8 text sources can be documented").
			Errorf("%s is not a text file", ref.Location)
	}

	return string(content), nil
}

// isBinary checks the first 512 bytes for a NUL.
func isBinary(content []byte) bool {
	const maxCheckSize = 512
	size := min(len(content), maxCheckSize)
	return bytes.IndexByte(content[:size], 0) != -1
}

func stripBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
}
