package Trees

// Tree is the contract of an ordered set of unique values kept in a binary
// search tree. Methods returning a bool second report whether the first
// result is meaningful: Minimum on an empty tree gives (zero, false).
// In BSTree, Insert (and so From), MinDepth and MaxDepth recurse once per
// level; the other methods loop.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if v is
	//already in the Tree, in which case the Tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false if v isn't
	//in the Tree, in which case the Tree is unchanged.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*BSTree[int])(nil)
