package Trees

// Tree represents an ordered set of unique values implemented using linked nodes.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise methods are
// implemented iteratively.
// None of the implementations are safe for concurrent use; guard them
// with a mutex if they are shared between goroutines.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if v wasn't present. Inserting
	//an existing value is a no-op and returns false.
	Insert(v T) bool
	//Remove v from the Tree. Returns true if v was present. Removing an
	//absent value is a no-op and returns false.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 for an empty tree.
	Height() uint
	//InOrder calls f on every element in ascending order and stops early
	//when f returns false. The tree must not be modified from within f.
	InOrder(f func(T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}
