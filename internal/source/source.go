// Package source turns command line arguments into file contents. Arguments
// may be file paths, doublestar globs, or http(s) URLs.
package source

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samber/oops"
)

type Kind int

const (
	KindFile Kind = iota
	KindURL
)

// Ref is one resolved input. Label names the input in the output and picks
// its language by extension.
type Ref struct {
	Kind     Kind
	Location string
	Label    string
}

// Resolve expands args in order. Glob matches are sorted and filtered by
// exclude; explicit paths and URLs are never excluded. A path named twice is
// kept once, at its first position.
func Resolve(args []string, exclude []string) ([]Ref, error) {
	refs := make([]Ref, 0, len(args))
	seen := make(map[string]struct{}, len(args))

	add := func(ref Ref) {
		if _, ok := seen[ref.Location]; ok {
			return
		}
		seen[ref.Location] = struct{}{}
		refs = append(refs, ref)
	}

	for _, arg := range args {
		switch {
		case isURL(arg):
			add(Ref{Kind: KindURL, Location: arg, Label: filenameFromURL(arg)})

		case isGlob(arg):
			matches, err := expandGlob(arg, exclude)
			if err != nil {
				return nil, err
			}
			for _, match := range matches {
				add(fileRef(match))
			}

		default:
			if err := checkFile(arg); err != nil {
				return nil, err
			}
			add(fileRef(arg))
		}
	}

	return refs, nil
}

func fileRef(path string) Ref {
	clean := filepath.Clean(path)
	return Ref{Kind: KindFile, Location: clean, Label: filepath.Base(clean)}
}

func isURL(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func expandGlob(pattern string, exclude []string) ([]string, error) {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, oops.
			Code("INVALID_ARGS").
			With("pattern", pattern).
			Hint("Check brackets and braces in the pattern").
			Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, oops.
			Code("READ_FAILED").
			With("pattern", pattern).
			Wrapf(err, "expanding glob %q", pattern)
	}

	matches = slices.DeleteFunc(matches, func(match string) bool {
		return isExcluded(match, exclude)
	})

	if len(matches) == 0 {
		return nil, oops.
			Code("INPUT_NOT_FOUND").
			With("pattern", pattern).
			Hint("Check the pattern and the exclude list in your config").
			Errorf("pattern %q matched no files", pattern)
	}

	slices.Sort(matches)
	return matches, nil
}

func isExcluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, slashed); matched {
			return true
		}
	}
	return false
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return oops.
				Code("INPUT_NOT_FOUND").
				With("path", path).
				Errorf("input file %q does not exist", path)
		}
		return oops.
			Code("READ_FAILED").
			With("path", path).
			Wrapf(err, "checking input file %q", path)
	}

	if info.IsDir() {
		return oops.
			Code("INPUT_NOT_FOUND").
			With("path", path).
			Hint("Pass a glob such as \"" + filepath.ToSlash(filepath.Join(path, "**", "*.sol")) + "\" to document a directory").
			Errorf("input %q is a directory", path)
	}

	return nil
}
