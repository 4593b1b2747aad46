package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the BSTree
// The zero value is meaningless.
type bstNode[T constraints.Ordered] struct {
	v    T
	l, r bstPtr[T]
}

// Pointer to a bstNode.
// A bstPtr is considered to be nil if it is equal to the nilPtr of its BSTree.
// The nilPtr node has both l and r pointing to itself.
type bstPtr[T constraints.Ordered] *bstNode[T]

// BSTree is a plain binary search tree with no repeated values. It does no
// balancing, so D, the height, is O(n) in the worst case, such as inserting
// sorted values. It is kept as a baseline for AVLTree.
type BSTree[T constraints.Ordered] struct {
	root   bstPtr[T] //the root of the tree. It should be nilPtr initially.
	nilPtr bstPtr[T] // nilPtr is the pointer used instead of nil here, it follows the description in bstPtr
	sz     uint
}

// MakeBSTree returns a BSTree satisfying the above definitions for nilPtr and root.
// BSTree shouldn't be created directly using struct literal.
func MakeBSTree[T constraints.Ordered]() *BSTree[T] {
	z := new(bstNode[T])
	z.l, z.r = z, z
	return &BSTree[T]{root: z, nilPtr: z}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v is already in u.
func (u *BSTree[T]) insert(curPtr *bstPtr[T], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &bstNode[T]{v, u.nilPtr, u.nilPtr}
		return true
	} else if v < cur.v {
		return u.insert(&cur.l, v)
	} else if v == cur.v {
		return false
	} else {
		return u.insert(&cur.r, v)
	}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if v doesn't exist in u.
// A node with two children takes the value of its in-order successor, and the
// successor node is unlinked instead.
// Time: O(D)
func (u *BSTree[T]) remove(curPtr *bstPtr[T], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		return false
	} else if v < cur.v {
		return u.remove(&cur.l, v)
	} else if v > cur.v {
		return u.remove(&cur.r, v)
	}
	if cur.l == u.nilPtr {
		*curPtr = cur.r
	} else if cur.r == u.nilPtr {
		*curPtr = cur.l
	} else {
		t := &cur.r
		for (*t).l != u.nilPtr {
			t = &(*t).l
		}
		cur.v = (*t).v
		*t = (*t).r
	}
	return true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.l != u.nilPtr {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == u.nilPtr {
		return cur.v, false
	} else {
		for cur.r != u.nilPtr {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Height [Tree.Height]
// Level by level, since the tree may be too deep for recursion.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Height() uint {
	h := uint(0)
	for level := []bstPtr[T]{u.root}; ; h++ {
		var next []bstPtr[T]
		for _, n := range level {
			if n != u.nilPtr {
				next = append(next, n.l, n.r)
			}
		}
		if len(next) == 0 {
			return h
		}
		level = next
	}
}

// InOrder [Tree.InOrder]
// Morris traversal: threads are added and removed on the way, so the tree is
// restored even when f stops early.
// Time: O(n); Space: O(1)
func (u *BSTree[T]) InOrder(f func(T) bool) {
	stopped := false
	for cur := u.root; cur != u.nilPtr; {
		if cur.l == u.nilPtr {
			if !stopped && !f(cur.v) {
				stopped = true
			}
			cur = cur.r
			continue
		}
		p := cur.l
		for p.r != u.nilPtr && p.r != cur {
			p = p.r
		}
		if p.r != cur {
			p.r = cur
			cur = cur.l
		} else {
			p.r = u.nilPtr
			if !stopped && !f(cur.v) {
				stopped = true
			}
			cur = cur.r
		}
	}
}

// Corrupt [Tree.Corrupt]
// Checks ordering and the cached size.
// Time: O(n); Space: O(n)
func (u *BSTree[T]) Corrupt() bool {
	var (
		prev  T
		count uint
		bad   bool
	)
	u.InOrder(func(v T) bool {
		if count > 0 && v <= prev {
			bad = true
			return false
		}
		prev = v
		count++
		return true
	})
	return bad || count != u.sz
}
