package treelib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is wrapped by every *InvalidPathError.
	ErrInvalidPath = errors.New("invalid path")
)

// InvalidPathError reports a general-grammar path segment that does
// not parse as a non-negative integer.
type InvalidPathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: bad segment %q", e.Path, e.Segment)
}

func (e *InvalidPathError) Unwrap() []error {
	return []error{ErrInvalidPath, e.Err}
}
