package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEntry is raised when parsing a blank chunk of text.
	ErrEmptyEntry = errors.New("entry is empty")
	// ErrMissingTitle is raised when a chunk contains no title heading.
	ErrMissingTitle = errors.New("no title in entry")
	// ErrUnknownHeading is raised when accessing a heading not present on an entry.
	ErrUnknownHeading = errors.New("unknown heading")
)

// AttributeError wraps a failure to decode the attribute section.
type AttributeError struct {
	Err error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("invalid attributes: %v", e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
