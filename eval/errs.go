package eval

import "errors"

var (
	// ErrBye is returned by the BYE command.  Hosts end the process with
	// status 0 when they see it.
	ErrBye = errors.New("bye")

	ErrBuiltinExists = errors.New("builtin exists")
)
