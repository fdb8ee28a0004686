package main

import (
	"fmt"

	"github.com/signadot/treelib/printer"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.printOpts(cc.Out)
	for _, arg := range args {
		root, err := getTreeFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if err := printer.Print(root, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
