package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nml").
		WithSynopsis("nml [opts] command [opts]").
		WithDescription("nml renders and inspects element markup.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nmlMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			FmtCommand(cfg),
			TreeCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("render [-out file.png] [-script steps.json] file.nml").
		WithDescription("render a document headlessly and write it as PNG").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-d] [files]").
		WithDescription("print the canonical markup of documents, with layouts expanded").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMarkup(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithOpts(opts...).
		WithSynopsis("tree [-text] file.nml").
		WithDescription("print the mounted element tree with layout bounds").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}
