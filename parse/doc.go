// Package parse runs metaL source against an [eval.Machine].
//
// # Grammar
//
//	program   = { statement } EOF
//	statement = [ command | phrase ] ( NEWLINE | EOF )
//	command   = SYMBOL                   (bound to a command in the VM)
//	phrase    = primitive { primitive }  (no command symbol in it)
//	primitive = SYMBOL | INTEGER
//
// A command statement calls the command with the machine as context and
// pushes its result, if any, onto the VM nest.  A phrase becomes a vector
// node, named after the line it starts on, whose nest holds the
// primitives in order; the vector is pushed onto the VM nest.  A command
// symbol sharing its statement with other tokens is a [*GrammarErr].
//
// # Usage
//
//	m := eval.NewMachine("metaL", os.Stdout)
//	p := parse.NewParser(m)
//	if err := p.Parse(src); err != nil {
//	    return err
//	}
//
// # Related Packages
//
//   - github.com/signadot/eds/token - Tokenization
//   - github.com/signadot/eds/eval - the machine and its builtins
package parse
