package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Validate walks the whole tree and reports the first broken property:
// values out of order, a parent back-reference that doesn't lead back to
// the node, or a size that doesn't match the number of reachable nodes.
// Every returned error wraps ErrCorrupt, so errors.Is matches it with both
// this package's errors and the standard library's.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Validate() error {
	if u.root != nil && u.root.p != nil {
		return errors.Wrapf(ErrCorrupt, "root %v has a parent %v", u.root.v, u.root.p.v)
	}
	var count uint
	var prev *node[T]
	st := make([]*node[T], 0, 8)
	for cur := u.root; cur != nil || len(st) > 0; {
		for ; cur != nil; cur = cur.l {
			for _, c := range [2]*node[T]{cur.l, cur.r} {
				if c != nil && c.p != cur {
					return errors.Wrapf(ErrCorrupt, "child %v of %v doesn't point back at it", c.v, cur.v)
				}
			}
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != nil && !(prev.v < cur.v) {
			return errors.Wrapf(ErrCorrupt, "%v is visited after %v", cur.v, prev.v)
		}
		count++
		prev, cur = cur, cur.r
	}
	if count != u.sz {
		return errors.Wrapf(ErrCorrupt, "size is %d, but %d nodes are reachable", u.sz, count)
	}
	return nil
}

// Corrupt [Tree.Corrupt]
func (u *BSTree[T]) Corrupt() bool {
	return u.Validate() != nil
}

// leveled is a node and its 1-based level, queued by Height.
type leveled[T constraints.Ordered] struct {
	n     *node[T]
	level uint
}

// Height is the number of nodes on the longest root to leaf path, measured
// level by level. 0 for an empty tree.
// Time: O(n); Space: O(widest level)
func (u *BSTree[T]) Height() uint {
	if u.root == nil {
		return 0
	}
	q := Queues.MakeArrayQueue[leveled[T]](u.sz/2 + 1)
	q.Push(leveled[T]{u.root, 1})
	var height uint
	for !q.Empty() {
		e, err := q.Pop()
		if err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "pop from non-empty queue"))
		}
		height = max(height, e.level)
		if e.n.l != nil {
			q.Push(leveled[T]{e.n.l, e.level + 1})
		}
		if e.n.r != nil {
			q.Push(leveled[T]{e.n.r, e.level + 1})
		}
	}
	return height
}

func (u *BSTree[T]) minDepth(c *node[T], cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth is the depth of the shallowest node missing a child, the root
// being at depth 0. Recursive. 0 for an empty tree.
func (u *BSTree[T]) MinDepth() uint {
	if u.root == nil {
		return 0
	}
	return u.minDepth(u.root, 0)
}

func (u *BSTree[T]) maxDepth(c *node[T], cd uint) uint {
	if c == nil {
		return cd - 1
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth is the number of edges on the longest root to leaf path, Height()-1.
// Recursive. 0 for an empty tree.
func (u *BSTree[T]) MaxDepth() uint {
	if u.root == nil {
		return 0
	}
	return u.maxDepth(u.root, 0)
}
