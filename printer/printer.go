package printer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/treelib"
)

type printState struct {
	indent int
	label  string

	colors *Colors
}

// Print renders the tree rooted at node to w. A nil node renders as a
// single "None" line. Recursion depth equals tree depth; the caller
// must guarantee an acyclic structure.
func Print(node *treelib.Node, w io.Writer, opts ...PrintOption) error {
	ps := &printState{
		indent: 4,
		label:  "Root",
	}
	for _, opt := range opts {
		opt(ps)
	}
	if node == nil {
		return writeString(w, ps.color(NoneColor, "None")+"\n")
	}
	return printNode(node, w, 0, ps.label, ps)
}

// Sprint renders the tree rooted at node as a string.
func Sprint(node *treelib.Node, opts ...PrintOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Print(node, buf, opts...); err != nil {
		return fmt.Sprintf("[raw *treelib.Node] %v", node)
	}
	return buf.String()
}

func printNode(node *treelib.Node, w io.Writer, depth int, label string, ps *printState) error {
	prefix := strings.Repeat(" ", ps.indent*depth)
	line := prefix + ps.color(LabelColor, label) + ":" + ps.color(ValueColor, valueString(node.Value))
	if err := writeString(w, line+"\n"); err != nil {
		return err
	}
	if len(node.Children) == 0 {
		return nil
	}
	if len(node.Children) <= 2 {
		labels := [2]string{"L", "R"}
		for i, child := range node.Children {
			if child == nil {
				if err := printEmpty(w, depth+1, labels[i]+"---", ps); err != nil {
					return err
				}
				continue
			}
			if err := printNode(child, w, depth+1, labels[i]+"---", ps); err != nil {
				return err
			}
		}
		return nil
	}
	for i, child := range node.Children {
		label := "C" + strconv.Itoa(i) + "---"
		if child == nil {
			if err := printEmpty(w, depth+1, label, ps); err != nil {
				return err
			}
			continue
		}
		if err := printNode(child, w, depth+1, label, ps); err != nil {
			return err
		}
	}
	return nil
}

func printEmpty(w io.Writer, depth int, label string, ps *printState) error {
	prefix := strings.Repeat(" ", ps.indent*depth)
	return writeString(w, prefix+ps.color(LabelColor, label)+ps.color(NoneColor, "None")+"\n")
}

func valueString(v any) string {
	if v == nil {
		return "None"
	}
	return fmt.Sprintf("%v", v)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (ps *printState) color(attr ColorAttr, s string) string {
	if ps.colors == nil {
		return s
	}
	return ps.colors.Color(attr, s)
}
