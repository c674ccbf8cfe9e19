package Trees

import "golang.org/x/exp/constraints"

// Direction names a child slot of a node, or the child configuration of a node.
// The zero value is None.
type Direction uint8

const (
	None Direction = iota
	Left
	Right
	Both
)

// Opposite swaps Left and Right. Anything that isn't Right is mapped to Right.
func (d Direction) Opposite() Direction {
	if d == Right {
		return Left
	}
	return Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "both"
	default:
		return "none"
	}
}

// A node in the BSTree
// The zero value is meaningless. p is a back-reference to the node whose l
// or r is this node; it is nil only at the root and never owns anything.
type node[T constraints.Ordered] struct {
	v       T
	l, r, p *node[T]
}

// children reports which child slots of n are occupied.
func (n *node[T]) children() Direction {
	if n.l != nil && n.r != nil {
		return Both
	} else if n.r != nil {
		return Right
	} else if n.l != nil {
		return Left
	}
	return None
}

// child returns the child in slot d. d must be Left or Right.
func (n *node[T]) child(d Direction) *node[T] {
	if d == Left {
		return n.l
	}
	return n.r
}

// setChild puts c into slot d of n and points c back at n. c may be nil.
func (n *node[T]) setChild(d Direction, c *node[T]) {
	if d == Left {
		n.l = c
	} else {
		n.r = c
	}
	if c != nil {
		c.p = n
	}
}

// slot returns the slot of n.p that holds n. n must not be the root.
func (n *node[T]) slot() Direction {
	if n.p.l == n {
		return Left
	}
	return Right
}
