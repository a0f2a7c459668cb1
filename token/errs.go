package token

import (
	"errors"
	"fmt"
)

var (
	ErrTokenize   = errors.New("tokenization error")
	ErrUnexpected = errors.New("unexpected character")
)

// TokenizeErr is a fatal lexing failure at Pos.  It matches ErrTokenize
// with errors.Is whatever its cause.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func (t *TokenizeErr) Is(target error) bool {
	return target == ErrTokenize
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (t *TokenizeErr) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrTokenize, t.Err.Error(), t.Pos.String())
}

func UnexpectedErr(r rune, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %q", ErrUnexpected, r), p)
}
