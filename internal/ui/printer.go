package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/g5becks/solcco/internal/weave"
)

type styles struct {
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	dim    *color.Color
	bold   *color.Color
}

func newStyles() styles {
	return styles{
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		dim:    color.New(color.Faint),
		bold:   color.New(color.Bold),
	}
}

// Printer reports run progress on stderr. Document output goes to stdout, so
// nothing here may be mixed into it.
type Printer struct {
	w       io.Writer
	verbose bool
	mu      sync.Mutex
	s       styles
}

func NewPrinter(verbose bool) *Printer {
	return NewPrinterWithWriter(os.Stderr, verbose)
}

// NewPrinterWithWriter creates a Printer that writes to the given writer.
func NewPrinterWithWriter(w io.Writer, verbose bool) *Printer {
	return &Printer{
		w:       w,
		verbose: verbose,
		s:       newStyles(),
	}
}

// HandleEvent is the callback wired into weave.Options.OnEvent. It prints
// only in verbose mode.
func (p *Printer) HandleEvent(e weave.Event) {
	if !p.verbose {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.s.dim.Sprint("·"),
		p.s.bold.Sprint(e.File),
		p.s.dim.Sprintf("(%s, %d segments, %s)", e.Language.Name, e.Segments, plural(e.Packs, "pack")),
	)
}

// Wrote reports a document written to path.
func (p *Printer) Wrote(path string, files int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%s wrote %s %s\n",
		p.s.green.Sprint("✓"),
		p.s.bold.Sprint(path),
		p.s.dim.Sprintf("(%s)", plural(files, "file")),
	)
}

// Noop reports a run that produced no output.
func (p *Printer) Noop(files int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%s processed %s %s\n",
		p.s.yellow.Sprint("—"),
		plural(files, "file"),
		p.s.dim.Sprint("(noop, nothing written)"),
	)
}

// Created reports a file created by init.
func (p *Printer) Created(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%s created %s\n", p.s.green.Sprint("✓"), p.s.bold.Sprint(path))
}

func (p *Printer) Error(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.w, "%s %s\n", p.s.red.Sprint("✗"), err)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
