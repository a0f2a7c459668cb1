package eval

import "github.com/signadot/eds/ir"

// Builtin is a command implemented in Go and installed in every machine.
type Builtin interface {
	String() string
	Run(ctx ir.Context) (*ir.Node, error)
}

type name string

func (s name) String() string {
	return string(s)
}
