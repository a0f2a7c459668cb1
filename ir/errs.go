package ir

import (
	"errors"
	"fmt"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrSlotNotFound   = errors.New("slot not found")
	ErrBadLiteral     = errors.New("bad literal")
	ErrNotCallable    = errors.New("not callable")
)

// UnderflowErr is returned by the stack operators when the nest holds
// fewer than Need elements.
type UnderflowErr struct {
	Op   string
	Need int
	Have int
}

func (u *UnderflowErr) Unwrap() error {
	return ErrStackUnderflow
}

func (u *UnderflowErr) Error() string {
	return fmt.Sprintf("%s: %s needs %d, have %d", ErrStackUnderflow, u.Op, u.Need, u.Have)
}

func slotErr(key string) error {
	return fmt.Errorf("%w: %q", ErrSlotNotFound, key)
}

func literalErr(k Kind, text string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s %q", ErrBadLiteral, k, text)
	}
	return fmt.Errorf("%w: %s %q: %w", ErrBadLiteral, k, text, err)
}
