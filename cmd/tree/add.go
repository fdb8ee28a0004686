package main

import (
	"fmt"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/debug"
	"github.com/signadot/treelib/printer"
	"github.com/signadot/treelib/treeyaml"

	"github.com/scott-cotton/cli"
)

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: add requires two arguments, a path and a value", cli.ErrUsage)
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: add requires -f <file>", cli.ErrUsage)
	}
	value, err := argValue(args[1], cfg.Expr)
	if err != nil {
		return err
	}
	root, err := treeyaml.Load(cfg.File)
	if err != nil {
		return err
	}
	if root == nil {
		root = treelib.New(nil)
	}
	if debug.CLI() {
		debug.Logf("add %q=%v in %q\n", args[0], value, cfg.File)
	}
	if _, err := treelib.Add(root, args[0], value); err != nil {
		return err
	}
	if err := treeyaml.Save(root, cfg.File); err != nil {
		return err
	}
	return printer.Print(root, cc.Out, cfg.printOpts(cc.Out)...)
}
