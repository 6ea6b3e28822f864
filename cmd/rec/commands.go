package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/flexrec/shape"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force color output'"`
	Mono  bool `cli:"name=mono desc='disable color output'"`

	Registry *shape.Registry

	Main *cli.Command
}

func (cfg *MainConfig) colorOn() bool {
	if cfg.Mono {
		return false
	}
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (cfg *MainConfig) shapeOpt(cc *cli.Context, v string) (any, error) {
	if err := loadShapeFile(cfg.Registry, v); err != nil {
		return nil, err
	}
	return v, nil
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{Registry: shape.NewRegistry()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "shape",
		Aliases:     []string{"s"},
		Description: "load a shape declaration file (repeatable)",
		Type:        cli.NamedFuncOpt(cfg.shapeOpt, "(file)"),
	})

	return cli.NewCommandAt(&cfg.Main, "rec").
		WithSynopsis("rec [opts] command [opts]").
		WithDescription("rec is a tool for working with dynamic records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cli.ErrUsage
		}).
		WithSubs(
			ViewCommand(cfg),
			ShapeCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			GenCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view record files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ShapeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShapeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("shape").
		WithSynopsis("shape [files]").
		WithDescription("validate and display shape declaration files").
		WithRun(func(cc *cli.Context, args []string) error {
			return shapeCmd(cfg, cc, args)
		})
	cfg.Shape = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <from> <to>").
		WithDescription("diff two record files with the same tag and shape").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <record> <patch>").
		WithDescription("apply an RFC-6902 patch to the dynamic layer of a record file").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Pkg: "main"}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("gen").
		WithAliases("g").
		WithSynopsis("gen [-pkg name] [-o file] <shapefiles>").
		WithDescription("generate typed Go wrappers for shape declarations").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
	cfg.Gen = cmd
	return cmd
}
