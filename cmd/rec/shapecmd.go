package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/render"
	"github.com/signadot/flexrec/shape"
)

type ShapeConfig struct {
	*MainConfig

	Shape *cli.Command
}

func shapeCmd(cfg *ShapeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shape.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		// no files: list shapes loaded via -shape
		for _, name := range cfg.Registry.Names() {
			sh, _ := cfg.Registry.Lookup(name)
			if err := render.RenderShape(cc.Out, sh, render.WithColor(cfg.colorOn())); err != nil {
				return err
			}
		}
		return nil
	}
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		sh, err := shape.ParseDecl(data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := render.RenderShape(cc.Out, sh, render.WithColor(cfg.colorOn())); err != nil {
			return err
		}
	}
	return nil
}
