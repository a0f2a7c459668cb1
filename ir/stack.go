package ir

// Stack words operate on the nest, addressed from its tail.  The comments
// give the effect on a nest holding 1 2 3, Forth style.

func (n *Node) need(op string, k int) error {
	if len(n.nest) < k {
		return &UnderflowErr{Op: op, Need: k, Have: len(n.nest)}
	}
	return nil
}

// Depth is the number of nest elements.
func (n *Node) Depth() int {
	return len(n.nest)
}

// Push appends that: ( 1 2 3 -- 1 2 3 x ).  A nil that is ignored.
func (n *Node) Push(that *Node) *Node {
	if that == nil {
		return n
	}
	n.nest = append(n.nest, that)
	return n
}

// Pop removes and returns the top: ( 1 2 3 -- 1 2 ) -> 3
func (n *Node) Pop() (*Node, error) {
	if err := n.need("pop", 1); err != nil {
		return nil, err
	}
	last := len(n.nest) - 1
	res := n.nest[last]
	n.nest[last] = nil
	n.nest = n.nest[:last]
	return res, nil
}

// Pip removes and returns the second from top: ( 1 2 3 -- 1 3 ) -> 2
func (n *Node) Pip() (*Node, error) {
	if err := n.need("pip", 2); err != nil {
		return nil, err
	}
	last := len(n.nest) - 1
	res := n.nest[last-1]
	n.nest[last-1] = n.nest[last]
	n.nest[last] = nil
	n.nest = n.nest[:last]
	return res, nil
}

// Top peeks at the top: ( 1 2 3 -- 1 2 3 ) -> 3
func (n *Node) Top() (*Node, error) {
	if err := n.need("top", 1); err != nil {
		return nil, err
	}
	return n.nest[len(n.nest)-1], nil
}

// Tip peeks at the second from top: ( 1 2 3 -- 1 2 3 ) -> 2
func (n *Node) Tip() (*Node, error) {
	if err := n.need("tip", 2); err != nil {
		return nil, err
	}
	return n.nest[len(n.nest)-2], nil
}

// Drop discards the top: ( 1 2 3 -- 1 2 )
func (n *Node) Drop() error {
	if err := n.need("drop", 1); err != nil {
		return err
	}
	_, err := n.Pop()
	return err
}

// Dup pushes the top again.  Both entries are the same node.
// ( 1 2 3 -- 1 2 3 3 )
func (n *Node) Dup() error {
	if err := n.need("dup", 1); err != nil {
		return err
	}
	n.Push(n.nest[len(n.nest)-1])
	return nil
}

// Swap exchanges the two top elements: ( 1 2 3 -- 1 3 2 )
func (n *Node) Swap() error {
	if err := n.need("swap", 2); err != nil {
		return err
	}
	last := len(n.nest) - 1
	n.nest[last-1], n.nest[last] = n.nest[last], n.nest[last-1]
	return nil
}

// Over pushes the second from top again, aliased: ( 1 2 3 -- 1 2 3 2 )
func (n *Node) Over() error {
	if err := n.need("over", 2); err != nil {
		return err
	}
	n.Push(n.nest[len(n.nest)-2])
	return nil
}

// Press discards the second from top: ( 1 2 3 -- 1 3 )
func (n *Node) Press() error {
	if err := n.need("press", 2); err != nil {
		return err
	}
	_, err := n.Pip()
	return err
}

// DropAll empties the nest: ( 1 2 3 -- )
func (n *Node) DropAll() *Node {
	clear(n.nest)
	n.nest = n.nest[:0]
	return n
}
