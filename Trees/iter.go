package Trees

import "iter"

// InOrder [Tree.InOrder]
// Each call starts a fresh traversal. Unlike a morris traversal the tree is
// never written to, at the cost of a stack of at most D nodes.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[T]) InOrder() func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for c := cur.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return cur.v, true
	}
}

// All returns the values in ascending order, for use with range.
func (u *BSTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		f := u.InOrder()
		for v, ok := f(); ok; v, ok = f() {
			if !yield(v) {
				return
			}
		}
	}
}
