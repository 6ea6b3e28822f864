package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/codegen"
	"github.com/signadot/flexrec/shape"
)

type GenConfig struct {
	*MainConfig

	Pkg string `cli:"name=pkg desc='package name for generated code'"`
	Out string `cli:"name=o desc='output file (default stdout)'"`

	Gen *cli.Command
}

func gen(cfg *GenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Gen.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: gen takes shape declaration files", cli.ErrUsage)
	}
	if cfg.Out != "" && len(args) > 1 {
		return fmt.Errorf("%w: -o takes a single shape declaration file", cli.ErrUsage)
	}
	buf := &bytes.Buffer{}
	for _, file := range args {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		sh, err := shape.ParseDecl(data)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := codegen.Generate(buf, &codegen.Config{Package: cfg.Pkg}, sh); err != nil {
			return err
		}
	}
	if cfg.Out == "" {
		_, err := cc.Out.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(cfg.Out, buf.Bytes(), 0o644)
}
