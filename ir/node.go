package ir

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// ID is the identity of a node.  IDs are unique for the life of the
// process and are never reused.
type ID uint64

// Context is what a command sees when it runs.
type Context interface {
	VM() *Node
	Arena() *Arena
	Output() io.Writer
}

// CommandFunc is the callable payload of a command node.
type CommandFunc func(ctx Context) (*Node, error)

// Node is the single graph entity: a scalar value, a map of named slots and
// an ordered nest which doubles as an operand stack.
type Node struct {
	id    ID
	kind  Kind
	value Value
	fn    CommandFunc

	slots map[string]*Node
	nest  []*Node
}

func (n *Node) ID() ID {
	return n.id
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Value() Value {
	return n.value
}

func (n *Node) Str() string {
	return n.value.Str()
}

func (n *Node) Int() int64 {
	return n.value.Int()
}

func (n *Node) Float() float64 {
	return n.value.Float()
}

// Render is the display form of the value: Hex renders as 0x.., Bin as
// 0b.., everything else as its plain string form.
func (n *Node) Render() string {
	return render(n.kind, n.value)
}

// String is the short header of n, without any children.
func (n *Node) String() string {
	return fmt.Sprintf("<%s:%s> @%x", n.kind, n.Render(), uint64(n.id))
}

// Call runs a command node.
func (n *Node) Call(ctx Context) (*Node, error) {
	if n.kind != CommandKind || n.fn == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, n)
	}
	return n.fn(ctx)
}

// BindByType stores that under its kind name.
func (n *Node) BindByType(that *Node) *Node {
	if that == nil {
		return n
	}
	return n.SetSlot(that.kind.String(), that)
}

// BindByValue stores that under the plain string form of its value.
func (n *Node) BindByValue(that *Node) *Node {
	if that == nil {
		return n
	}
	return n.SetSlot(that.value.String(), that)
}

// SetSlot stores that under key.  A nil that is ignored; use DeleteSlot
// to remove a slot.
func (n *Node) SetSlot(key string, that *Node) *Node {
	if that == nil {
		return n
	}
	if n.slots == nil {
		n.slots = map[string]*Node{}
	}
	n.slots[key] = that
	return n
}

func (n *Node) Slot(key string) (*Node, error) {
	res, ok := n.slots[key]
	if !ok {
		return nil, slotErr(key)
	}
	return res, nil
}

// Get is like Slot but returns nil when key is absent.
func (n *Node) Get(key string) *Node {
	return n.slots[key]
}

func (n *Node) HasSlot(key string) bool {
	_, ok := n.slots[key]
	return ok
}

func (n *Node) DeleteSlot(key string) *Node {
	delete(n.slots, key)
	return n
}

// SlotKeys returns the slot keys in sorted order.
func (n *Node) SlotKeys() []string {
	return slices.Sorted(maps.Keys(n.slots))
}

// Nest returns a copy of the nest, bottom first.
func (n *Node) Nest() []*Node {
	return slices.Clone(n.nest)
}

// At returns the i'th nest element counting from the bottom.
func (n *Node) At(i int) *Node {
	return n.nest[i]
}
