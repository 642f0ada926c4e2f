// Package slug allocates run-unique anchors and records the table of
// contents as files and headings are encountered.
package slug

import (
	"strconv"
	"strings"
)

// Tag classifies a TOC entry: "file" or a heading tag such as "h2".
type Tag string

const TagFile Tag = "file"

// HeadingTag returns the tag for a heading of the given level.
func HeadingTag(level int) Tag {
	return Tag("h" + strconv.Itoa(level))
}

// Level returns the heading level of the tag, or 0 for file entries.
func (t Tag) Level() int {
	level, err := strconv.Atoi(strings.TrimPrefix(string(t), "h"))
	if err != nil || !strings.HasPrefix(string(t), "h") {
		return 0
	}
	return level
}

type TocEntry struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Tag   Tag    `json:"tag"`
}

// Allocator issues slugs that are unique for the lifetime of one allocator.
// Create one per run; it is not safe for concurrent use.
type Allocator struct {
	issued map[string]struct{}
	toc    []TocEntry
}

func NewAllocator() *Allocator {
	return &Allocator{issued: make(map[string]struct{})}
}

// Slugify normalizes title and registers the first free variant of it. The
// first occurrence keeps the base slug; later ones get -0, -1, ...
func (a *Allocator) Slugify(title string) string {
	return a.register(Normalize(title))
}

// File allocates the slug of a file and records its TOC entry.
func (a *Allocator) File(name string) string {
	s := a.Slugify(name)
	a.toc = append(a.toc, TocEntry{Title: name, Slug: s, Tag: TagFile})
	return s
}

// Heading allocates a heading anchor scoped by the file slug and records its
// TOC entry. Headings with the same title in different files do not collide.
func (a *Allocator) Heading(fileSlug, title string, level int) string {
	s := a.register(fileSlug + "-" + Normalize(title))
	a.toc = append(a.toc, TocEntry{Title: title, Slug: s, Tag: HeadingTag(level)})
	return s
}

// TOC returns the entries recorded so far in encounter order.
func (a *Allocator) TOC() []TocEntry {
	return append([]TocEntry(nil), a.toc...)
}

func (a *Allocator) register(base string) string {
	key := base
	for i := 0; a.taken(key); i++ {
		key = base + "-" + strconv.Itoa(i)
	}
	a.issued[key] = struct{}{}
	return key
}

func (a *Allocator) taken(key string) bool {
	_, ok := a.issued[key]
	return ok
}

// Normalize lowercases title, joins its words with hyphens and percent-encodes
// the result the way encodeURIComponent does.
func Normalize(title string) string {
	words := strings.Fields(strings.ToLower(title))
	return escapeComponent(strings.Join(words, "-"))
}

const upperHex = "0123456789ABCDEF"

func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
