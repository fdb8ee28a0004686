package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tree").
		WithSynopsis("tree [opts] command [opts]").
		WithDescription("tree is a tool for working with path-addressed tree files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treeMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			AddCommand(cfg),
			EditCommand(cfg),
			DelCommand(cfg),
			DiffCommand(cfg),
			DemoCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view tree files as indented text").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("add").
		WithAliases("a").
		WithSynopsis("add -f <file> <path> <value>").
		WithDescription(addDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
	cfg.Add = cmd
	return cmd
}

const addDescription = `add sets the value at <path> in the tree stored in <file>,
creating the node and any intermediate nodes as needed.

Paths come in two grammars. A path consisting only of 'L' and 'R'
letters descends binary slots:

  tree add -f t.yaml LLR 7

Any other path is a comma-separated list of slot indices:

  tree add -f t.yaml 0,2,1 99

A missing file starts a new tree. With -e, the value argument is an
expression, e.g. 'tree add -e -f t.yaml L "6 * 7"'.`

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("edit").
		WithAliases("e").
		WithSynopsis("edit -f <file> <path> <value>").
		WithDescription("edit the value of an existing node at <path>").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
	cfg.Edit = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("del").
		WithAliases("d", "rm").
		WithSynopsis("del -f <file> <path>").
		WithDescription(delDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

const delDescription = `del removes the node at <path>. Binary paths empty the slot in
place, keeping sibling positions; general paths remove the slot,
shifting later siblings down. The empty path "" discards the tree.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <file-a> <file-b>").
		WithDescription("diff the renderings of two tree files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffTrees(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("demo").
		WithSynopsis("demo [files]").
		WithDescription("build and print sample trees, then view the given files").
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
	cfg.Demo = cmd
	return cmd
}
