package main

import (
	"io"
	"os"

	"github.com/signadot/treelib/printer"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='render trees with color'"`
	Indent int  `cli:"name=indent desc='spaces per tree depth level (default 4)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) printOpts(w io.Writer) []printer.PrintOption {
	var res []printer.PrintOption
	if cfg.Indent > 0 {
		res = append(res, printer.Indent(cfg.Indent))
	}
	if cfg.colorEnabled(w) {
		res = append(res, printer.PrintColors(printer.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type AddConfig struct {
	*MainConfig

	File string `cli:"name=f aliases=file desc='tree file to update'"`
	Expr bool   `cli:"name=e desc='evaluate the value argument as an expression'"`

	Add *cli.Command
}

type EditConfig struct {
	*MainConfig

	File string `cli:"name=f aliases=file desc='tree file to update'"`
	Expr bool   `cli:"name=e desc='evaluate the value argument as an expression'"`

	Edit *cli.Command
}

type DelConfig struct {
	*MainConfig

	File string `cli:"name=f aliases=file desc='tree file to update'"`

	Del *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}
