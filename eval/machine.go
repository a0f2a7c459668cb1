package eval

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/signadot/eds/debug"
	"github.com/signadot/eds/encode"
	"github.com/signadot/eds/ir"
)

// DefaultName is the value of the process wide VM node.
const DefaultName = "metaL"

// Machine owns a VM node, the root symbol table and traversal root, along
// with the arena its nodes are built in.  It is the context commands run
// in.
//
// A Machine is not safe for concurrent evaluation; hosts evaluating from
// several goroutines serialize with Lock and Unlock.
type Machine struct {
	sync.Mutex

	arena *ir.Arena
	vm    *ir.Node
	out   io.Writer

	dumpOpts []encode.DumpOption
}

// NewMachine creates a VM node named name and binds every registered
// builtin into it by name.
func NewMachine(name string, out io.Writer) *Machine {
	a := ir.NewArena()
	m := &Machine{
		arena: a,
		vm:    a.VM(name),
		out:   out,
	}
	for _, b := range Builtins() {
		m.vm.BindByValue(a.Command(b.String(), b.Run))
	}
	return m
}

var (
	defaultOnce sync.Once
	defaultM    *Machine
)

// Default returns the process wide machine, created on first use.
func Default() *Machine {
	defaultOnce.Do(func() {
		defaultM = NewMachine(DefaultName, os.Stdout)
	})
	return defaultM
}

func (m *Machine) VM() *ir.Node {
	return m.vm
}

func (m *Machine) Arena() *ir.Arena {
	return m.arena
}

func (m *Machine) Output() io.Writer {
	return m.out
}

func (m *Machine) SetOutput(w io.Writer) {
	m.out = w
}

func (m *Machine) DumpOptions() []encode.DumpOption {
	return m.dumpOpts
}

func (m *Machine) SetDumpOptions(opts ...encode.DumpOption) {
	m.dumpOpts = opts
}

// Command returns the command bound in the VM under name, or nil.
func (m *Machine) Command(name string) *ir.Node {
	n := m.vm.Get(name)
	if n == nil || n.Kind() != ir.CommandKind {
		return nil
	}
	return n
}

// Call runs cmd against the machine and pushes a non nil result onto the
// VM nest.
func (m *Machine) Call(cmd *ir.Node) error {
	if debug.Eval() {
		debug.Logf("eval %s\n", cmd.String())
	}
	res, err := cmd.Call(m)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Str(), err)
	}
	if res != nil {
		m.vm.Push(res)
	}
	return nil
}

// Collect releases every arena node no longer reachable from the VM and
// returns how many were released.  The caller holds the machine lock.
func (m *Machine) Collect() int {
	return m.arena.Collect(m.vm)
}
