package eval

import (
	"fmt"

	"github.com/signadot/eds/encode"
	"github.com/signadot/eds/ir"
)

var (
	byeSym  = &byeBuiltin{name: "BYE"}
	showSym = &showBuiltin{name: "?"}

	dupSym     = &stackBuiltin{name: "DUP", op: (*ir.Node).Dup}
	dropSym    = &stackBuiltin{name: "DROP", op: (*ir.Node).Drop}
	swapSym    = &stackBuiltin{name: "SWAP", op: (*ir.Node).Swap}
	overSym    = &stackBuiltin{name: "OVER", op: (*ir.Node).Over}
	pressSym   = &stackBuiltin{name: "PRESS", op: (*ir.Node).Press}
	dropAllSym = &stackBuiltin{name: "DROPALL", op: func(n *ir.Node) error {
		n.DropAll()
		return nil
	}}
)

// Bye ends the session: it returns ErrBye.
func Bye() Builtin { return byeSym }

// Show writes the dump of the VM to the machine output.
func Show() Builtin { return showSym }

func Dup() Builtin     { return dupSym }
func Drop() Builtin    { return dropSym }
func Swap() Builtin    { return swapSym }
func Over() Builtin    { return overSym }
func Press() Builtin   { return pressSym }
func DropAll() Builtin { return dropAllSym }

type byeBuiltin struct {
	name
}

func (byeBuiltin) Run(ir.Context) (*ir.Node, error) {
	return nil, ErrBye
}

// stackBuiltin applies a stack word to the VM nest.
type stackBuiltin struct {
	name
	op func(*ir.Node) error
}

func (s stackBuiltin) Run(ctx ir.Context) (*ir.Node, error) {
	return nil, s.op(ctx.VM())
}

type showBuiltin struct {
	name
}

// dumpOptioner is implemented by contexts carrying dump options.
type dumpOptioner interface {
	DumpOptions() []encode.DumpOption
}

func (showBuiltin) Run(ctx ir.Context) (*ir.Node, error) {
	var opts []encode.DumpOption
	if do, ok := ctx.(dumpOptioner); ok {
		opts = do.DumpOptions()
	}
	w := ctx.Output()
	if err := encode.Dump(ctx.VM(), w, opts...); err != nil {
		return nil, err
	}
	_, err := fmt.Fprintln(w)
	return nil, err
}
