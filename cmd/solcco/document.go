package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/solcco/internal/config"
	"github.com/g5becks/solcco/internal/language"
	"github.com/g5becks/solcco/internal/output"
	"github.com/g5becks/solcco/internal/source"
	"github.com/g5becks/solcco/internal/ui"
	"github.com/g5becks/solcco/internal/weave"
)

//nolint:gochecknoglobals // swapped in tests
var stdout io.Writer = os.Stdout

func documentAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.Bool("verbose"))

	doc, err := weaveArgs(ctx, cmd, cfg, printer)
	if err != nil {
		return err
	}

	if cmd.Bool("code") {
		return output.Code(stdout, doc)
	}

	if cmd.Bool("noop") {
		printer.Noop(len(doc.Files))
		return nil
	}

	var buf bytes.Buffer
	if cmd.Bool("json") {
		err = output.JSON(&buf, doc)
	} else {
		err = output.HTML(&buf, doc, cfg.Title)
	}
	if err != nil {
		return err
	}

	destination := outputPath(cmd, cfg)
	if destination == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}

	if err := output.WriteFile(destination, buf.Bytes()); err != nil {
		return err
	}

	printer.Wrote(destination, len(doc.Files))
	return nil
}

// outputPath is --file, else the configured output under --write, else ""
// for stdout.
func outputPath(cmd *cli.Command, cfg *config.Config) string {
	if file := cmd.String("file"); file != "" {
		return file
	}

	if cmd.Bool("write") {
		return cfg.Output
	}

	return ""
}

// loadConfig loads the config and applies the command line overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("level") {
		cfg.Level = cmd.Int("level")
	}
	if cmd.IsSet("style") {
		cfg.Style = cmd.String("style")
	}
	if cmd.IsSet("title") {
		cfg.Title = cmd.String("title")
	}
	if cmd.IsSet("parallel") {
		cfg.Parallel = cmd.Int("parallel")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func requireArgs(cmd *cli.Command, usage string) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, oops.
			Code("INVALID_ARGS").
			Hint("Usage: " + usage).
			Errorf("no input files given")
	}
	return args, nil
}

func readArgs(ctx context.Context, cmd *cli.Command, cfg *config.Config, usage string) ([]weave.Input, error) {
	args, err := requireArgs(cmd, usage)
	if err != nil {
		return nil, err
	}

	refs, err := source.Resolve(args, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	return source.NewReader(cfg.Parallel).Read(ctx, refs)
}

func weaveArgs(ctx context.Context, cmd *cli.Command, cfg *config.Config, printer *ui.Printer) (*weave.Document, error) {
	inputs, err := readArgs(ctx, cmd, cfg, "solcco [flags] file1 [... fileN]")
	if err != nil {
		return nil, err
	}

	return weave.Run(inputs, weave.Options{
		MaxHeadingLevel: cfg.Level,
		Style:           cfg.Style,
		Languages:       language.NewRegistry(cfg.Languages),
		OnEvent:         printer.HandleEvent,
	})
}
