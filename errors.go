package lexlink

import (
	"errors"
	"fmt"

	"github.com/lexlink/lexlink/connector"
)

var (
	// ErrBadConnector is returned when a connector string violates the
	// grammar's lexical shape or the encoding capacity. The dictionary
	// load must abort with it.
	ErrBadConnector = errors.New("malformed connector")

	// ErrFinalized is returned by mutating operations after Finalize.
	ErrFinalized = errors.New("registry is finalized")

	// ErrNotFinalized is returned when parsing is attempted before
	// Finalize has run.
	ErrNotFinalized = errors.New("registry is not finalized")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("registry is closed")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var encErr *connector.EncodingError
	if errors.As(err, &encErr) {
		return fmt.Errorf("%w: %w", ErrBadConnector, err)
	}
	if errors.Is(err, connector.ErrTableFinalized) {
		return fmt.Errorf("%w: %w", ErrFinalized, err)
	}
	if errors.Is(err, connector.ErrTableNotFinalized) {
		return fmt.Errorf("%w: %w", ErrNotFinalized, err)
	}
	if errors.Is(err, connector.ErrTableClosed) {
		return fmt.Errorf("%w: %w", ErrClosed, err)
	}

	return err
}
