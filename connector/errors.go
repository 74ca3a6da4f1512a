package connector

import (
	"errors"
	"fmt"
)

var (
	// ErrTableFinalized is returned by mutating table operations after
	// Finalize has run.
	ErrTableFinalized = errors.New("connector table is finalized")

	// ErrTableNotFinalized is returned when an operation that needs the
	// dense uppercase-group ids runs before Finalize.
	ErrTableNotFinalized = errors.New("connector table is not finalized")

	// ErrTableClosed is returned when the table has been torn down.
	ErrTableClosed = errors.New("connector table is closed")
)

// EncodingError indicates connector text that violates the lexical shape or
// exceeds the trailing-letter packing budget. The grammar load must abort
// with it.
type EncodingError struct {
	Text   string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("malformed connector %q: %s", e.Text, e.Reason)
}

// InternalError indicates a broken invariant inside the table, such as a
// rehash collision during growth. It signals a logic defect rather than
// resource exhaustion and is never retried.
type InternalError struct {
	Op     string
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("connector table internal error in %s: %s", e.Op, e.Detail)
}
