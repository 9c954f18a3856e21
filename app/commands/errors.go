package commands

import (
	"errors"
	"fmt"
)

// ErrMalformedCommand is matched by every MalformedCommandError.
var ErrMalformedCommand = errors.New("malformed command")

// MalformedCommandError reports a line that could not be turned into a command.
type MalformedCommandError struct {
	Line   string
	Reason string
}

func (e *MalformedCommandError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrMalformedCommand, e.Reason, e.Line)
}

func (e *MalformedCommandError) Unwrap() error {
	return ErrMalformedCommand
}
