// Package eval provides the virtual machine that metaL statements are
// evaluated against.
//
// A [Machine] holds the VM node, which is both the global symbol table and
// the operand stack, and is the [ir.Context] commands run in.  Builtins
// are kept in a registry ([Register], [Lookup], [Builtins]) and bound into
// every new machine under their names:
//
//	BYE      end the session (returns [ErrBye])
//	DUP      ( a -- a a )
//	DROP     ( a -- )
//	SWAP     ( a b -- b a )
//	OVER     ( a b -- a b a )
//	PRESS    ( a b -- b )
//	DROPALL  ( ... -- )
//	?        dump the VM to the machine output
package eval
