package encode

import (
	"strconv"

	"github.com/signadot/eds/ir"
)

// Step is one visit of a walk.
type Step struct {
	Depth  int
	Parent *ir.Node
	Node   *ir.Node

	// InSlot tells whether Node hangs off Parent by a slot (Key) or by
	// nest position (Index).  Both are unset for the root.
	InSlot bool
	Key    string
	Index  int

	// Seen is set when Node was already visited earlier in the same walk.
	// Its children are not visited again.
	Seen bool
}

// Edge is the slot key or nest index leading to the node, "" for the root.
func (s *Step) Edge() string {
	switch {
	case s.Parent == nil:
		return ""
	case s.InSlot:
		return s.Key
	default:
		return strconv.Itoa(s.Index)
	}
}

type VisitFunc func(s *Step) error

// Walk visits root and everything reachable from it depth first, slots in
// key order before the nest in index order.
//
// The visited set belongs to this call only.  A node reached a second time,
// through a cycle or just through shared structure, is reported with Seen
// set and is not descended into.
func Walk(root *ir.Node, visit VisitFunc) error {
	if root == nil {
		return nil
	}
	visited := map[ir.ID]bool{}
	work := []Step{{Node: root}}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		s.Seen = visited[s.Node.ID()]
		visited[s.Node.ID()] = true
		if err := visit(&s); err != nil {
			return err
		}
		if s.Seen {
			continue
		}
		work = pushChildren(work, &s)
	}
	return nil
}

// pushChildren pushes in reverse so the first slot is popped first.
func pushChildren(work []Step, s *Step) []Step {
	n := s.Node
	for i := n.Depth() - 1; i >= 0; i-- {
		work = append(work, Step{
			Depth:  s.Depth + 1,
			Parent: n,
			Node:   n.At(i),
			Index:  i,
		})
	}
	keys := n.SlotKeys()
	for i := len(keys) - 1; i >= 0; i-- {
		work = append(work, Step{
			Depth:  s.Depth + 1,
			Parent: n,
			Node:   n.Get(keys[i]),
			InSlot: true,
			Key:    keys[i],
		})
	}
	return work
}
