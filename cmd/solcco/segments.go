package main

import (
	"context"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/solcco/internal/language"
	"github.com/g5becks/solcco/internal/output"
	"github.com/g5becks/solcco/internal/ui"
	"github.com/g5becks/solcco/internal/weave"
)

func newSegmentsCommand() *cli.Command {
	return &cli.Command{
		Name:      "segments",
		Usage:     "Show how a file splits into code and comment segments",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{Name: "json", Usage: "Output as JSON"},
		},
		Action: segmentsAction,
	}
}

func segmentsAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return oops.
			Code("INVALID_ARGS").
			Hint("Usage: solcco segments <file>").
			Errorf("expected 1 argument, got %d", cmd.Args().Len())
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inputs, err := readArgs(ctx, cmd, cfg, "solcco segments <file>")
	if err != nil {
		return err
	}

	_, segments, err := weave.Lex(inputs[0], language.NewRegistry(cfg.Languages))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return output.JSON(stdout, segments)
	}

	ui.RenderSegments(stdout, segments)
	return nil
}
