package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/eds/token"
)

var ErrGrammar = errors.New("grammar error")

// GrammarErr is a statement matching no production.  It matches
// ErrGrammar with errors.Is.
type GrammarErr struct {
	Err error
	Pos token.Pos
}

func (g *GrammarErr) Unwrap() error {
	return g.Err
}

func (g *GrammarErr) Is(target error) bool {
	return target == ErrGrammar
}

func (g *GrammarErr) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrGrammar, g.Err.Error(), g.Pos.String())
}
