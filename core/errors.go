package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a call rejected before any I/O because a
	// required endpoint or name argument was missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported marks a directory-mode transfer. Recursive transfer
	// is not implemented; the call fails before any I/O happens.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrRemoteOperation wraps a failure reported by the protocol driver.
	// The underlying status or library error stays reachable via
	// errors.Is / errors.As.
	ErrRemoteOperation = errors.New("remote operation failed")

	// ErrLocalIO wraps a local file open/read/write failure.
	ErrLocalIO = errors.New("local i/o failed")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func remoteErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRemoteOperation, op, err)
}

func localErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLocalIO, op, err)
}
