package main

import (
	"fmt"
	"io"

	"github.com/signadot/treelib/printer"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffTrees(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two tree files", cli.ErrUsage)
	}
	from, err := getTreeFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	to, err := getTreeFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	var pOpts []printer.PrintOption
	if cfg.Indent > 0 {
		pOpts = append(pOpts, printer.Indent(cfg.Indent))
	}
	diffs := printer.Diff(from, to, pOpts...)
	if len(diffs) == 0 {
		return nil
	}
	if cfg.colorEnabled(cc.Out) {
		_, err = io.WriteString(cc.Out, diffpatch.New().DiffPrettyText(diffs))
		return err
	}
	return plainDiff(cc.Out, diffs)
}

// plainDiff writes diffs in wdiff-style markers, for output that is
// not a terminal.
func plainDiff(w io.Writer, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffInsert:
			_, err = io.WriteString(w, "{+"+d.Text+"+}")
		case diffpatch.DiffDelete:
			_, err = io.WriteString(w, "[-"+d.Text+"-]")
		case diffpatch.DiffEqual:
			_, err = io.WriteString(w, d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
