package main

import (
	"fmt"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/printer"
	"github.com/signadot/treelib/treeyaml"

	"github.com/scott-cotton/cli"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: edit requires two arguments, a path and a value", cli.ErrUsage)
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: edit requires -f <file>", cli.ErrUsage)
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
		return fmt.Errorf("no tree in %q", cfg.File)
	}
	if _, err := treelib.Edit(root, args[0], value); err != nil {
		return err
	}
	if err := treeyaml.Save(root, cfg.File); err != nil {
		return err
	}
	return printer.Print(root, cc.Out, cfg.printOpts(cc.Out)...)
}
