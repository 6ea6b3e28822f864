package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/recdiff"
)

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly 2 record files", cli.ErrUsage)
	}
	from, err := getRecFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := getRecFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	entries, err := recdiff.Diff(from, to)
	if err != nil {
		return err
	}
	return recdiff.Render(cc.Out, entries)
}
