// Package ir provides the node graph behind executable data structures.
//
// # Overview
//
// A single type, [Node], represents data, symbol tables and executable
// commands.  Every node carries
//
//   - a [Kind], fixed at construction
//   - an immutable scalar [Value] (string, int64 or float64)
//   - slots, a map from name to node
//   - a nest, an ordered sequence of nodes whose tail is the top of stack
//   - an [ID], unique for the life of the process
//
// The graph need not be a tree.  A node may be referenced from the slots
// and nest of many parents, and may reach itself.
//
// # Kinds
//
// Kinds fall in four families:
//
//   - primitive: symbol, string, number, integer, hex, bin
//   - container: vector, dict, stack, queue
//   - active: vm, command
//   - meta: lexer, parser
//
// Numeric kinds parse their text on construction.  Hex and Bin keep an
// integer value and render it back in base 16 and base 2.
//
// # Creating Nodes
//
// Nodes are built by an [Arena], which also indexes them by identity:
//
//	a := ir.NewArena()
//	vm := a.VM("metaL")
//	n, err := a.Integer("42")
//	vm.BindByType(a.Symbol("x")).Push(n)
//
// [Arena.Collect] releases the nodes that are no longer reachable from a
// set of roots.
//
// # Stack Discipline
//
// The nest doubles as an operand stack with the Forth words Push, Pop,
// Pip, Top, Tip, Drop, Dup, Swap, Over, Press and DropAll.  Dup and Over
// alias: the pushed entry is the same node, not a copy.  Every word that
// needs more elements than the nest holds fails with an error wrapping
// [ErrStackUnderflow] and leaves the nest unchanged.
package ir
