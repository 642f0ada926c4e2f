// Package language maps file extensions to the language used to highlight
// a file's code.
package language

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/oops"
)

const CodeUnsupported = "UNSUPPORTED_LANGUAGE"

// Language names a language and the chroma lexer that highlights it.
type Language struct {
	Name  string `json:"name"`
	Lexer string `json:"lexer"`
}

func Defaults() map[string]Language {
	return map[string]Language{
		".js":  {Name: "javascript", Lexer: "javascript"},
		".sol": {Name: "solidity", Lexer: "solidity"},
	}
}

// UnsupportedError reports a file whose extension has no registered language.
type UnsupportedError struct {
	File string
	Ext  string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unknown file extension: %q (file %s)", e.Ext, e.File)
}

type Registry struct {
	byExt map[string]Language
}

// NewRegistry starts from the defaults and adds extra extension to lexer
// mappings. Extensions are matched case-insensitively, with or without the
// leading dot.
func NewRegistry(extra map[string]string) *Registry {
	r := &Registry{byExt: Defaults()}
	for ext, lexer := range extra {
		r.byExt[normalizeExt(ext)] = Language{Name: strings.ToLower(lexer), Lexer: lexer}
	}
	return r
}

// ForFile returns the language of file by extension.
func (r *Registry) ForFile(file string) (Language, error) {
	ext := normalizeExt(filepath.Ext(file))
	if lang, ok := r.byExt[ext]; ok {
		return lang, nil
	}

	return Language{}, oops.
		Code(CodeUnsupported).
		With("file", file).
		With("extension", ext).
		Hint(fmt.Sprintf("Supported extensions: %s; add more under [languages] in solcco.toml",
			strings.Join(r.Extensions(), ", "))).
		Wrap(&UnsupportedError{File: file, Ext: ext})
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	return slices.Sorted(maps.Keys(r.byExt))
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
