// Package printer renders trees as indented text.
//
// # Usage
//
//	root := treelib.New(10)
//	treelib.Add(root, "L", 5)
//	err := printer.Print(root, os.Stdout)
//
//	// Print with options
//	err := printer.Print(root, os.Stdout, printer.Indent(2), printer.PrintColors(printer.NewColors()))
//
// Each node prints one line of indentation, label and value. A node
// with at most two child slots is labeled in the binary style (L, R);
// a node with more slots is labeled in the general style (C0, C1, ...).
// Empty slots print as <label>---None without recursing.
//
// # Related Packages
//
//   - github.com/signadot/treelib - Node model and mutation
//   - github.com/signadot/treelib/treeyaml - YAML serialization
package printer
