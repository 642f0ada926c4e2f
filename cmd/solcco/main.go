package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/solcco/internal/ui"
)

var (
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	version = "dev"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	commit = "unknown"
	//nolint:gochecknoglobals // Build metadata is injected at build time with ldflags.
	buildTime = "unknown"
)

func main() {
	if err := run(os.Args); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newRootCommand().Run(context.Background(), args)
}

func reportError(err error) {
	ui.NewPrinter(false).Error(err)

	if oopsErr, ok := oops.AsOops(err); ok && oopsErr.Hint() != "" {
		_, _ = fmt.Fprintln(os.Stderr, color.New(color.Faint).Sprint("hint: "+oopsErr.Hint()))
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "solcco",
		Usage:     "Generate side-by-side documentation from commented Solidity and JavaScript",
		ArgsUsage: "file1 [... fileN]",
		Version:   versionString(),
		Description: `Arguments may be file paths, glob patterns such as "contracts/**/*.sol", or
http(s) URLs. Comments are rendered as markdown next to the code they describe.

Examples:
  solcco -w contracts/*.sol     write documentation to out.html
  solcco -c contracts/*.sol     print the code stripped of comments`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{Name: "code", Aliases: []string{"c"}, Usage: "Strip comments and print the code. Takes precedence over output options"},
			levelFlag(),
			&cli.BoolFlag{Name: "noop", Aliases: []string{"n"}, Usage: "Process the files without emitting documentation"},
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "Write to the configured output file (default out.html) instead of stdout"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Write to the given file"},
			&cli.BoolFlag{Name: "json", Usage: "Emit the document as JSON instead of HTML"},
			&cli.StringFlag{Name: "style", Usage: "chroma style used for code highlighting"},
			&cli.StringFlag{Name: "title", Usage: "Page title"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"}, Usage: "Maximum files read at once"},
			&cli.BoolFlag{Name: "verbose", Usage: "Report every processed file"},
		},
		Action: documentAction,
		Commands: []*cli.Command{
			newTOCCommand(),
			newSegmentsCommand(),
			newInitCommand(),
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{Name: "config", Usage: "Path to config file"}
}

func levelFlag() cli.Flag {
	return &cli.IntFlag{Name: "level", Aliases: []string{"l"}, Usage: "Maximum heading level to anchor and list in the TOC (default 2)"}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildTime)
}
