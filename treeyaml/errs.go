package treeyaml

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDoc is wrapped by every *MalformedDocumentError.
	ErrMalformedDoc = errors.New("malformed tree document")
)

// MalformedDocumentError reports a document whose shape cannot
// represent a tree, such as a "children" key holding a non-sequence.
type MalformedDocumentError struct {
	Key     string
	Message string
	Err     error
}

func (e *MalformedDocumentError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("malformed tree document at key %q: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("malformed tree document: %s", e.Message)
}

func (e *MalformedDocumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedDoc, e.Err}
	}
	return []error{ErrMalformedDoc}
}
