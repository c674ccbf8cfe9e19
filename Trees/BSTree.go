package Trees

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree with no repeated values. It does no
// rotations; instead Remove promotes the replacement value from whichever
// subtree of the removed node is deeper along its boundary path, and From
// inserts values in median-first order so that the resulting tree is
// balanced. Nodes keep a back-reference to their parent.
// The zero value is an empty tree ready to use.
// D used in the time complexities is the depth of the tree. It is O(log n)
// right after From, and can degrade to O(n) under adversarial Insert orders.
// Values must be totally ordered by < and ==, so float NaN isn't supported.
type BSTree[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

// New returns a tree holding vs. It is the same as From(vs).
func New[T constraints.Ordered](vs ...T) *BSTree[T] {
	return From(vs)
}

// From builds a tree from vs, which needn't be sorted and may contain
// duplicates. vs is copied and sorted, then the middle element is inserted
// first, followed recursively by the left half and the right half. Repeated
// elements are dropped by Insert.
// Time: O(n log n) for the sort, O(n log n) for the inserts.
func From[T constraints.Ordered](vs []T) *BSTree[T] {
	u := new(BSTree[T])
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	order(sorted, func(v T) { u.Insert(v) })
	return u
}

// order calls yield on the elements of s such that inserting them in this
// order builds a tree of minimal height: middle, then left half, then right half.
func order[T any](s []T, yield func(T)) {
	if len(s) == 0 {
		return
	}
	mid := len(s) >> 1
	yield(s[mid])
	order(s[:mid], yield)
	order(s[mid+1:], yield)
}

// Size returns the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// find the node holding v, nil if there's none.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) find(v T) *node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.find(v) != nil
}

// insert the value v to the subtree rooting at *curPtr recursively. p is the
// parent of *curPtr. A failed insertion happens when v is already there.
func (u *BSTree[T]) insert(curPtr **node[T], p *node[T], v T) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &node[T]{v: v, p: p}
		return true
	} else if v < cur.v {
		return u.insert(&cur.l, cur, v)
	} else if v == cur.v {
		return false
	} else {
		return u.insert(&cur.r, cur, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if u.insert(&u.root, nil, v) {
		u.sz++
		return true
	}
	return false
}

// Remove [Tree.Remove].
// A leaf is cut off its parent. Otherwise the node keeps its place and takes
// the value of its in-order predecessor or successor, and the node that held
// that value is spliced out. With two children the side whose boundary lies
// deeper wins, which keeps removals from always shortening the same side.
// Removing the last value empties the tree.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Remove(v T) bool {
	n := u.find(v)
	if n == nil {
		return false
	}
	switch d := n.children(); d {
	case None:
		if n.p == nil {
			u.root = nil
		} else {
			n.p.setChild(n.slot(), nil)
			n.p = nil
		}
	default:
		var s successor[T]
		if d == Both {
			s = resolveBoth(n)
		} else {
			s = resolve(n, d)
		}
		if Log.IsLevelEnabled(logrus.DebugLevel) {
			Log.WithFields(logrus.Fields{
				"op": "remove", "value": v, "successor": s.n.v,
				"children": d, "detach": s.d, "count": s.count,
			}).Debug("promoting successor")
		}
		n.v = s.n.v
		splice(s)
	}
	u.sz--
	return true
}

// splice the successor node out of the tree. It has at most one child, which
// takes its place.
func splice[T constraints.Ordered](s successor[T]) {
	c := s.n.l
	if c == nil {
		c = s.n.r
	}
	s.n.p.setChild(s.d, c)
	s.n.l, s.n.r, s.n.p = nil, nil, nil
}

// Clear removes every value.
// Time: O(1)
func (u *BSTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// First is Minimum, but reports an empty tree with ErrEmptyTree.
func (u *BSTree[T]) First() (T, error) {
	if v, ok := u.Minimum(); ok {
		return v, nil
	}
	return *new(T), ErrEmptyTree
}

// Last is Maximum, but reports an empty tree with ErrEmptyTree.
func (u *BSTree[T]) Last() (T, error) {
	if v, ok := u.Maximum(); ok {
		return v, nil
	}
	return *new(T), ErrEmptyTree
}

// Root returns the value at the root, or ErrEmptyTree.
func (u *BSTree[T]) Root() (T, error) {
	if u.root == nil {
		return *new(T), ErrEmptyTree
	}
	return u.root.v, nil
}

// Keys returns all values in ascending order.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Keys() []T {
	s := make([]T, 0, u.sz)
	for v := range u.All() {
		s = append(s, v)
	}
	return s
}

// Equal reports whether u and o hold the same values. Shapes may differ.
// A nil o is an empty tree.
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Equal(o *BSTree[T]) bool {
	if o == nil {
		return u.sz == 0
	}
	if u.sz != o.sz {
		return false
	}
	f, g := u.InOrder(), o.InOrder()
	for {
		a, ok1 := f()
		b, ok2 := g()
		if ok1 != ok2 || a != b {
			return false
		}
		if !ok1 {
			return true
		}
	}
}

// String prints the values in ascending order, e.g. [1, 3, 4].
func (u *BSTree[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range u.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
