package main

import (
	"fmt"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/printer"
	"github.com/signadot/treelib/treeyaml"

	"github.com/scott-cotton/cli"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: del requires one argument, a path", cli.ErrUsage)
	}
	if cfg.File == "" {
		return fmt.Errorf("%w: del requires -f <file>", cli.ErrUsage)
	}
	root, err := treeyaml.Load(cfg.File)
	if err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("no tree in %q", cfg.File)
	}
	root, err = treelib.Delete(root, args[0])
	if err != nil {
		return err
	}
	if err := treeyaml.Save(root, cfg.File); err != nil {
		return err
	}
	return printer.Print(root, cc.Out, cfg.printOpts(cc.Out)...)
}
