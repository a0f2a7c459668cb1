// Package encode presents node graphs, as a textual tree dump or as a
// node/edge record stream for graph rendering.
//
// # Usage
//
//	// Dump a graph as an indented tree
//	encode.Dump(vm, os.Stdout)
//
//	// Dump with colored headers
//	encode.Dump(vm, os.Stdout, encode.DumpColors(encode.NewColors()))
//
//	// Export to Graphviz
//	encode.WriteDOT(vm, f)
//
//	// Export as YAML records
//	encode.WriteRecords(vm, f)
//
// Every traversal shares [Walk]: depth first, slots before nest, with a
// visited set owned by the call.  A node met again within one call, be it
// through a cycle or through two paths to the same node, is cut short: the
// dump marks it with " _/" and the graph export only emits the edge.
//
// # Related Packages
//
//   - github.com/signadot/eds/ir - the node graph
package encode
