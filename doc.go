// Package treelib provides a tree structure that supports both binary
// conventions (left/right access over child slots 0 and 1) and general
// n-ary access over an ordered child slot list, together with
// path-addressed mutation.
//
// # Node Structure
//
// A Node holds a Value and an ordered sequence of child slots. A slot
// holds either a child node or nil; a nil slot is an explicitly empty
// position, distinct from a slot that does not exist. The binary view
// (Left, Right) reads and writes slots 0 and 1 in place and never
// changes the identity of other slots.
//
// Nodes exclusively own the nodes reachable through Children. The
// structure must stay acyclic; nothing enforces this.
//
// # Paths
//
// Nodes are addressed with path strings in one of two grammars. A path
// made entirely of 'L' and 'R' characters is a binary path selecting
// slot 0 or 1 at each step:
//
//	treelib.Add(root, "LR", 7)
//
// Any other non-empty path is a general path of comma-separated
// non-negative slot indices:
//
//	treelib.Add(root, "0,2,1", 99)
//
// The classification is decided once, by character set, when the path
// is parsed; a digit or comma anywhere makes the path general. The
// empty path addresses the root itself.
//
// Resolving a path is not read-only: intermediate slots are padded and
// empty intermediate nodes are created while descending, even if the
// caller later abandons the mutation. See Path.Resolve.
//
// # Mutation
//
// Add, Edit and Delete mutate the tree in place through a path string.
// Delete keeps slot positions stable for binary paths and shifts
// later siblings down for general paths, because binary slots are
// positionally meaningful and general slots form a dense list.
//
// # Related Packages
//
//   - github.com/signadot/treelib/printer - Renders trees as indented text
//   - github.com/signadot/treelib/treeyaml - YAML serialization and file I/O
//
// Node structures are not thread-safe; callers must synchronize or
// clone per goroutine.
package treelib
