package main

import (
	"fmt"
	"io"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/treeyaml"

	"github.com/scott-cotton/cli"
)

func getTreeFile(cc *cli.Context, path string) (*treelib.Node, error) {
	if path != "-" {
		return treeyaml.Load(path)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return treeyaml.Unmarshal(d)
}
