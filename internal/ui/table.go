package ui

import (
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/g5becks/solcco/internal/segment"
	"github.com/g5becks/solcco/internal/slug"
)

const previewWidth = 48

// RenderTOC writes entries as a table, headings indented by level.
func RenderTOC(w io.Writer, entries []slug.TocEntry) {
	writer := newTableWriter(w)
	writer.AppendHeader(table.Row{"TITLE", "SLUG", "TAG"})

	for _, entry := range entries {
		title := entry.Title
		if level := entry.Tag.Level(); level > 0 {
			title = strings.Repeat("  ", level) + title
		}

		writer.AppendRow(table.Row{title, entry.Slug, string(entry.Tag)})
	}

	writer.Render()
}

// RenderSegments writes one row per segment with a one-line preview of its
// content.
func RenderSegments(w io.Writer, segments []segment.Segment) {
	writer := newTableWriter(w)
	writer.AppendHeader(table.Row{"#", "KIND", "LINE", "CONTENT"})
	writer.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for i, seg := range segments {
		writer.AppendRow(table.Row{
			strconv.Itoa(i),
			seg.Kind.String(),
			strconv.Itoa(seg.Line),
			preview(seg.Content),
		})
	}

	writer.Render()
}

func newTableWriter(w io.Writer) table.Writer {
	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)
	return writer
}

func preview(content string) string {
	quoted := strconv.Quote(content)
	quoted = quoted[1 : len(quoted)-1]
	return text.Trim(quoted, previewWidth)
}
