package treelib

import (
	"strconv"
	"strings"
)

// PathKind classifies a parsed path's grammar.
type PathKind int

const (
	// BinaryPath addresses slots 0 and 1 with 'L' and 'R' letters.
	BinaryPath PathKind = iota
	// GeneralPath addresses arbitrary slots with comma-separated
	// non-negative indices.
	GeneralPath
)

func (k PathKind) String() string {
	switch k {
	case BinaryPath:
		return "binary"
	case GeneralPath:
		return "general"
	default:
		return "<unknown kind>"
	}
}

// Path is a parsed path string. Kind is decided once at parse time and
// reused everywhere the binary/general distinction matters, so call
// sites never re-derive it from the raw string.
type Path struct {
	Kind  PathKind
	Steps []int
}

// IsRoot reports whether the path addresses the root node itself.
func (p *Path) IsRoot() bool {
	return len(p.Steps) == 0
}

func (p *Path) String() string {
	if p.Kind == BinaryPath {
		var sb strings.Builder
		for _, s := range p.Steps {
			if s == 0 {
				sb.WriteByte('L')
			} else {
				sb.WriteByte('R')
			}
		}
		return sb.String()
	}
	parts := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// ParsePath parses a path string. The empty string yields a root path
// (IsRoot). A path made entirely of 'L' and 'R' characters is binary;
// anything else is general: split on commas, segments trimmed, empty
// segments dropped, each remaining segment a non-negative integer. A
// general segment that does not parse yields an *InvalidPathError.
func ParsePath(path string) (*Path, error) {
	if path == "" {
		return &Path{}, nil
	}
	if isBinary(path) {
		steps := make([]int, len(path))
		for i := 0; i < len(path); i++ {
			if path[i] == 'R' {
				steps[i] = 1
			}
		}
		return &Path{Kind: BinaryPath, Steps: steps}, nil
	}
	parts := strings.Split(path, ",")
	steps := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		u, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, &InvalidPathError{Path: path, Segment: part, Err: err}
		}
		steps = append(steps, int(u))
	}
	return &Path{Kind: GeneralPath, Steps: steps}, nil
}

func isBinary(path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] != 'L' && path[i] != 'R' {
			return false
		}
	}
	return true
}

// Resolve descends from root along all steps but the last and returns
// the parent node together with the final step's slot index. A root
// path returns (nil, -1); callers must special-case it.
//
// Resolve is not read-only: while descending it pads child sequences
// with empty slots up to each step's index and materializes a new
// empty node in any nil intermediate slot. These side effects persist
// even if the caller never performs a mutation at the returned slot.
// The target slot itself is never materialized here.
func (p *Path) Resolve(root *Node) (parent *Node, idx int) {
	if p.IsRoot() {
		return nil, -1
	}
	node := root
	for _, step := range p.Steps[:len(p.Steps)-1] {
		node.grow(step)
		if node.Children[step] == nil {
			node.Children[step] = &Node{}
		}
		node = node.Children[step]
	}
	return node, p.Steps[len(p.Steps)-1]
}
