package main

import (
	"fmt"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/printer"
	"github.com/signadot/treelib/treeyaml"

	"github.com/scott-cotton/cli"
)

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.printOpts(cc.Out)

	root := treelib.New(1)
	root.SetLeft(treelib.New(2))
	root.SetRight(treelib.New(3))
	root.Left().SetLeft(treelib.New(4))
	root.Left().SetRight(treelib.New(5))
	if err := printer.Print(root, cc.Out, opts...); err != nil {
		return err
	}

	root = treelib.New(10)
	fmt.Fprintln(cc.Out, "Initial tree:")
	if err := printer.Print(root, cc.Out, opts...); err != nil {
		return err
	}

	fmt.Fprintln(cc.Out, "\nAdding nodes:")
	steps := []struct {
		path  string
		value int
	}{
		{"L", 5}, {"R", 15},
		{"LL", 3}, {"LR", 7},
		{"RL", 12}, {"RR", 18},
	}
	for _, step := range steps {
		if _, err := treelib.Add(root, step.path, step.value); err != nil {
			return err
		}
	}
	fmt.Fprintln(cc.Out, "\nTree after additions:")
	if err := printer.Print(root, cc.Out, opts...); err != nil {
		return err
	}

	for _, arg := range args {
		fmt.Fprintf(cc.Out, "\nBuilding tree from %q:\n", arg)
		fromFile, err := treeyaml.Load(arg)
		if err != nil {
			return err
		}
		if err := printer.Print(fromFile, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
