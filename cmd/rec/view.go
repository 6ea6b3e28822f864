package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/render"
)

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	return viewFiles(cfg, cc, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, cc *cli.Context, w io.Writer, files []string) error {
	for i, file := range files {
		rec, err := getRecFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := render.Render(w, rec, render.WithColor(cfg.colorOn())); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := w.Write([]byte("\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
