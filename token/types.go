package token

import (
	"fmt"

	"github.com/signadot/eds/ir"
)

type TokenType int

const (
	TNewline TokenType = iota
	TInteger
	TSymbol
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNewline: "TNewline",
		TInteger: "TInteger",
		TSymbol:  "TSymbol",
	}[t]
}

// Token is a lexeme.  Integer and symbol tokens carry the primitive node
// built from their text; a newline ends a statement and carries none.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
	Node  *ir.Node
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	if t.Type == TNewline {
		return `\n`
	}
	return string(t.Bytes)
}
