// Package treeyaml converts trees to and from YAML documents.
//
// # Usage
//
//	root, err := treeyaml.Load("tree.yaml") // missing file -> nil tree, nil error
//	if err != nil {
//	    return err
//	}
//	treelib.Add(root, "LL", 3)
//	err = treeyaml.Save(root, "tree.yaml")
//
// A node serializes to a mapping with a "value" key first, then either
// "left"/"right" keys (at most two child slots) or a "children"
// sequence (more than two slots). Key order is declaration order, never
// alphabetical; files written by other implementations of this format
// depend on it.
//
// The binary form omits empty slots, so an explicit empty left slot
// and a never-present left slot serialize identically and both
// deserialize as absent. This collapse is a documented compatibility
// behavior, not a defect; the "children" sequence form preserves
// empty slots as nulls.
//
// # Related Packages
//
//   - github.com/signadot/treelib - Node model and mutation
//   - github.com/signadot/treelib/printer - Indented text rendering
package treeyaml
