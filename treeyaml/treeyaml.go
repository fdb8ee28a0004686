package treeyaml

import (
	"github.com/signadot/treelib"

	"github.com/goccy/go-yaml"
)

// Serialize converts a tree to a generic YAML document: nested
// mappings, sequences and scalars. A nil node yields a nil document.
// Mappings are yaml.MapSlice values so that the key declaration order
// (value, then left/right or children) survives marshaling.
func Serialize(node *treelib.Node) any {
	if node == nil {
		return nil
	}
	doc := yaml.MapSlice{{Key: "value", Value: node.Value}}
	if len(node.Children) == 0 {
		return doc
	}
	if len(node.Children) <= 2 {
		// Empty slots are omitted here, so explicit-empty and absent
		// collapse to the same document. The children form below keeps
		// them as nulls.
		if left := Serialize(node.Left()); left != nil {
			doc = append(doc, yaml.MapItem{Key: "left", Value: left})
		}
		if right := Serialize(node.Right()); right != nil {
			doc = append(doc, yaml.MapItem{Key: "right", Value: right})
		}
		return doc
	}
	children := make([]any, len(node.Children))
	for i, c := range node.Children {
		children[i] = Serialize(c)
	}
	return append(doc, yaml.MapItem{Key: "children", Value: children})
}

// Deserialize converts a generic YAML document to a tree. A nil
// document yields a nil tree; a non-mapping document yields a leaf
// holding the document as its value. For mappings, the "value" key
// supplies the node value (absent key means a nil value), and the
// "left"/"right" keys take precedence over a "children" key when
// choosing the node's shape.
func Deserialize(doc any) (*treelib.Node, error) {
	if doc == nil {
		return nil, nil
	}
	m, ok := mapping(doc)
	if !ok {
		return treelib.New(doc), nil
	}
	node := treelib.New(m["value"])
	left, hasLeft := m["left"]
	right, hasRight := m["right"]
	if hasLeft || hasRight {
		leftNode, err := Deserialize(left)
		if err != nil {
			return nil, err
		}
		rightNode, err := Deserialize(right)
		if err != nil {
			return nil, err
		}
		node.Children = []*treelib.Node{leftNode, rightNode}
		return node, nil
	}
	children, hasChildren := m["children"]
	if !hasChildren {
		return node, nil
	}
	if children == nil {
		node.Children = []*treelib.Node{}
		return node, nil
	}
	seq, ok := children.([]any)
	if !ok {
		return nil, &MalformedDocumentError{
			Key:     "children",
			Message: "not a sequence",
		}
	}
	node.Children = make([]*treelib.Node, len(seq))
	for i, c := range seq {
		child, err := Deserialize(c)
		if err != nil {
			return nil, err
		}
		node.Children[i] = child
	}
	return node, nil
}

// mapping views doc as a key-lookup table. Both decoded documents
// (map[string]any) and serialized ones (yaml.MapSlice) qualify.
func mapping(doc any) (map[string]any, bool) {
	switch m := doc.(type) {
	case map[string]any:
		return m, true
	case yaml.MapSlice:
		res := make(map[string]any, len(m))
		for _, item := range m {
			key, ok := item.Key.(string)
			if !ok {
				continue
			}
			res[key] = item.Value
		}
		return res, true
	default:
		return nil, false
	}
}

// Marshal serializes a tree to YAML text.
func Marshal(node *treelib.Node) ([]byte, error) {
	return yaml.Marshal(Serialize(node))
}

// Unmarshal parses YAML text into a tree.
func Unmarshal(data []byte) (*treelib.Node, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Message: "not a YAML document", Err: err}
	}
	return Deserialize(doc)
}
