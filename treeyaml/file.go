package treeyaml

import (
	"fmt"
	"os"

	"github.com/signadot/treelib"
	"github.com/signadot/treelib/debug"
)

// Load reads a tree from a YAML file. A missing file is not an error:
// it yields a nil tree, the same as a file containing a null document.
func Load(path string) (*treelib.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	node, err := Unmarshal(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", path, err)
	}
	if debug.YAML() {
		debug.Logf("loaded %q:\n%v\n", path, node)
	}
	return node, nil
}

// Save writes a tree to a YAML file, overwriting any existing content.
func Save(node *treelib.Node, path string) error {
	d, err := Marshal(node)
	if err != nil {
		return fmt.Errorf("could not encode tree: %w", err)
	}
	if err := os.WriteFile(path, d, 0o644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if debug.YAML() {
		debug.Logf("saved %q:\n%v\n", path, node)
	}
	return nil
}
