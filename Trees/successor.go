package Trees

import "golang.org/x/exp/constraints"

// successor is the node whose value can replace a removed value.
// n.p is the node to detach from and d is the slot of n.p that holds n.
// count is the number of steps taken after the first step into the subtree.
type successor[T constraints.Ordered] struct {
	n     *node[T]
	d     Direction
	count int
}

// resolve the successor of n on side d, which must be Left or Right and
// hold a child. Left gives the greatest value of n.l, Right the smallest of n.r.
// Time: O(D); Space: O(1)
func resolve[T constraints.Ordered](n *node[T], d Direction) successor[T] {
	prior, cur := n, n.child(d)
	// walk the other way to reach the boundary of the subtree
	back := d.Opposite()
	count := -1
	for cur != nil {
		count++
		prior, cur = cur, cur.child(back)
	}
	// never went down a level: prior hangs off n on the original side
	if count == 0 {
		back = d
	}
	return successor[T]{prior, back, count}
}

// resolveBoth resolves both sides of n, which must have two children, and
// returns the one from the side that needed more steps. Ties go to Left.
func resolveBoth[T constraints.Ordered](n *node[T]) successor[T] {
	l, r := resolve(n, Left), resolve(n, Right)
	if l.count >= r.count {
		return l
	}
	return r
}
