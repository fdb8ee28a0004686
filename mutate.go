package treelib

import "slices"

// Add sets the value at path, creating the node there if the slot is
// empty or does not exist and creating intermediate nodes as needed.
// An occupied slot only has its value overwritten; its subtree is
// preserved. The empty path sets the root's value. Returns root; the
// mutation is in place.
func Add(root *Node, path string, value any) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if p.IsRoot() {
		root.Value = value
		return root, nil
	}
	parent, idx := p.Resolve(root)
	parent.grow(idx)
	if parent.Children[idx] == nil {
		parent.Children[idx] = New(value)
	} else {
		parent.Children[idx].Value = value
	}
	return root, nil
}

// Edit sets the value at path. Its semantics are identical to Add; it
// exists for call sites that modify nodes expected to be present.
func Edit(root *Node, path string, value any) (*Node, error) {
	return Add(root, path, value)
}

// Delete removes the node at path. The empty path discards the entire
// tree and returns nil. A binary path sets the slot to empty, keeping
// sibling indices stable; a general path removes the slot, shifting
// later siblings down by one. A slot index beyond the child sequence
// is a no-op.
func Delete(root *Node, path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if p.IsRoot() {
		return nil, nil
	}
	parent, idx := p.Resolve(root)
	if idx >= len(parent.Children) {
		return root, nil
	}
	if p.Kind == BinaryPath {
		parent.Children[idx] = nil
		return root, nil
	}
	parent.Children = slices.Delete(parent.Children, idx, idx+1)
	return root, nil
}
