package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/g5becks/solcco/internal/output"
	"github.com/g5becks/solcco/internal/ui"
)

func newTOCCommand() *cli.Command {
	return &cli.Command{
		Name:      "toc",
		Usage:     "Print the table of contents the documentation would have",
		ArgsUsage: "file1 [... fileN]",
		Flags: []cli.Flag{
			configFlag(),
			levelFlag(),
			&cli.StringFlag{Name: "match", Aliases: []string{"m"}, Usage: "Only show entries fuzzily matching this query"},
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
		},
		Action: tocAction,
	}
}

func tocAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	doc, err := weaveArgs(ctx, cmd, cfg, ui.NewPrinter(false))
	if err != nil {
		return err
	}

	entries := ui.FilterTOC(doc.TOC, cmd.String("match"))

	if cmd.Bool("json") {
		return output.JSON(stdout, entries)
	}

	ui.RenderTOC(stdout, entries)
	return nil
}
