package treelib

import "reflect"

// Node is a single tree node. Children is an ordered sequence of child
// slots; a nil slot is explicitly empty, which is distinct from the
// slot not existing at all. Value may be any scalar or opaque payload,
// including nil.
type Node struct {
	Value    any
	Children []*Node
}

// New returns a node with the given value and no children.
func New(value any) *Node {
	return &Node{Value: value}
}

// FromValues returns a node whose children are leaves holding the
// given values, in order.
func FromValues(value any, children ...any) *Node {
	res := New(value)
	res.Children = make([]*Node, len(children))
	for i, c := range children {
		res.Children[i] = New(c)
	}
	return res
}

// Left returns the node in slot 0, or nil if slot 0 is empty or does
// not exist.
func (n *Node) Left() *Node {
	if len(n.Children) > 0 {
		return n.Children[0]
	}
	return nil
}

// SetLeft places child in slot 0, appending the slot if the node has
// no children yet. Other slots keep their identity.
func (n *Node) SetLeft(child *Node) {
	if len(n.Children) == 0 {
		n.Children = append(n.Children, child)
		return
	}
	n.Children[0] = child
}

// Right returns the node in slot 1, or nil if slot 1 is empty or does
// not exist.
func (n *Node) Right() *Node {
	if len(n.Children) > 1 {
		return n.Children[1]
	}
	return nil
}

// SetRight places child in slot 1, padding slot 0 with an empty slot
// if needed.
func (n *Node) SetRight(child *Node) {
	n.grow(1)
	n.Children[1] = child
}

// grow extends Children with empty slots so that idx is a valid index.
func (n *Node) grow(idx int) {
	for len(n.Children) <= idx {
		n.Children = append(n.Children, nil)
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Value: n.Value}
	if n.Children == nil {
		return res
	}
	res.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		res.Children[i] = c.Clone()
	}
	return res
}

// Visit walks the subtree rooted at n, calling f before (isPost false)
// and after (isPost true) each node's children. Returning false from
// the pre call skips the node's children. Empty slots are not visited.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if c == nil {
				continue
			}
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Equal reports whether a and b have the same shape and values,
// including the placement of empty slots.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.DeepEqual(a.Value, b.Value) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
