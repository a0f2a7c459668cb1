package ir

import (
	"sync"
	"sync/atomic"
)

// lastID is shared by all arenas so that identities stay unique across the
// process.
var lastID atomic.Uint64

// Arena builds nodes and indexes them by identity.  Construction is safe
// for concurrent use; the slots and nest of a node are not.
type Arena struct {
	mu    sync.Mutex
	nodes map[ID]*Node
}

func NewArena() *Arena {
	return &Arena{nodes: map[ID]*Node{}}
}

func (a *Arena) alloc(k Kind, v Value) *Node {
	n := &Node{
		id:    ID(lastID.Add(1)),
		kind:  k,
		value: v,
	}
	a.mu.Lock()
	a.nodes[n.id] = n
	a.mu.Unlock()
	return n
}

// Lookup resolves an identity to a live node.
func (a *Arena) Lookup(id ID) (*Node, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	n, ok := a.nodes[id]
	return n, ok
}

// Len is the number of live nodes.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.nodes)
}

// Collect releases every node not reachable from roots through slots or
// nest and returns how many were released.  Released nodes no longer
// resolve with Lookup.
func (a *Arena) Collect(roots ...*Node) int {
	marked := map[ID]bool{}
	work := make([]*Node, 0, len(roots))
	for _, r := range roots {
		if r != nil {
			work = append(work, r)
		}
	}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]
		if marked[n.id] {
			continue
		}
		marked[n.id] = true
		for _, c := range n.slots {
			work = append(work, c)
		}
		work = append(work, n.nest...)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	released := 0
	for id := range a.nodes {
		if !marked[id] {
			delete(a.nodes, id)
			released++
		}
	}
	return released
}

func (a *Arena) Symbol(name string) *Node {
	return a.alloc(SymbolKind, StringValue(name))
}

func (a *Arena) String(s string) *Node {
	return a.alloc(StringKind, StringValue(s))
}

func (a *Arena) Number(text string) (*Node, error) {
	v, err := parseNumber(text)
	if err != nil {
		return nil, err
	}
	return a.alloc(NumberKind, v), nil
}

func (a *Arena) Integer(text string) (*Node, error) {
	v, err := parseInteger(text)
	if err != nil {
		return nil, err
	}
	return a.alloc(IntegerKind, v), nil
}

// Hex parses base 16 text with an optional 0x prefix.
func (a *Arena) Hex(text string) (*Node, error) {
	v, err := parseBased(HexKind, text, "0x", 16)
	if err != nil {
		return nil, err
	}
	return a.alloc(HexKind, v), nil
}

// Bin parses base 2 text with an optional 0b prefix.
func (a *Arena) Bin(text string) (*Node, error) {
	v, err := parseBased(BinKind, text, "0b", 2)
	if err != nil {
		return nil, err
	}
	return a.alloc(BinKind, v), nil
}

func (a *Arena) FromInt(i int64) *Node {
	return a.alloc(IntegerKind, IntValue(i))
}

func (a *Arena) FromFloat(f float64) *Node {
	return a.alloc(NumberKind, FloatValue(f))
}

func (a *Arena) Vector(name string) *Node {
	return a.alloc(VectorKind, StringValue(name))
}

func (a *Arena) Dict(name string) *Node {
	return a.alloc(DictKind, StringValue(name))
}

func (a *Arena) Stack(name string) *Node {
	return a.alloc(StackKind, StringValue(name))
}

func (a *Arena) Queue(name string) *Node {
	return a.alloc(QueueKind, StringValue(name))
}

func (a *Arena) VM(name string) *Node {
	return a.alloc(VMKind, StringValue(name))
}

// Command wraps fn as a command node whose value is name.
func (a *Arena) Command(name string, fn CommandFunc) *Node {
	n := a.alloc(CommandKind, StringValue(name))
	n.fn = fn
	return n
}

func (a *Arena) Lexer(name string) *Node {
	return a.alloc(LexerKind, StringValue(name))
}

func (a *Arena) Parser(name string) *Node {
	return a.alloc(ParserKind, StringValue(name))
}
