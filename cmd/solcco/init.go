package main

import (
	"context"
	"errors"
	"os"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/g5becks/solcco/internal/config"
	"github.com/g5becks/solcco/internal/output"
	"github.com/g5becks/solcco/internal/ui"
)

const initFilename = "solcco.toml"

func newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter solcco.toml in the current directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing solcco.toml"},
		},
		Action: initAction,
	}
}

func initAction(_ context.Context, cmd *cli.Command) error {
	if _, err := os.Stat(initFilename); err == nil {
		if !cmd.Bool("force") {
			return oops.
				Code("WRITE_FAILED").
				With("path", initFilename).
				Hint("Pass --force to overwrite it").
				Errorf("%s already exists", initFilename)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return oops.
			Code("WRITE_FAILED").
			With("path", initFilename).
			Wrapf(err, "checking %s", initFilename)
	}

	if err := output.WriteFile(initFilename, []byte(config.Starter)); err != nil {
		return err
	}

	ui.NewPrinter(false).Created(initFilename)
	return nil
}
