package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/g5becks/solcco/internal/slug"
)

type tocIndex []slug.TocEntry

func (t tocIndex) String(i int) string {
	return t[i].Title
}

func (t tocIndex) Len() int {
	return len(t)
}

// FilterTOC keeps the entries whose title fuzzily matches query, best match
// first. Equal scores keep document order. An empty query keeps everything.
func FilterTOC(entries []slug.TocEntry, query string) []slug.TocEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, tocIndex(entries))

	filtered := make([]slug.TocEntry, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, entries[match.Index])
	}

	return filtered
}
