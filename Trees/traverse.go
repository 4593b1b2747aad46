package Trees

import (
	"github.com/g-m-twostay/go-avl/Queues"
	"golang.org/x/exp/constraints"
)

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).key, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).key, true
}

// Predecessor [Tree.Predecessor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.key {
			cur = cur.left
		} else {
			p = cur
			cur = cur.right
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.key, true
}

// Successor [Tree.Successor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if v < cur.key {
			p = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.key, true
}

// Height [Tree.Height]
// Follows the taller side given by the balance factors, so only one path is visited.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Height() uint {
	h := uint(0)
	for cur := u.root; cur != nil; h++ {
		if cur.bf < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return h
}

// InOrder [Tree.InOrder]
// Stack based iterative traversal.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) InOrder(f func(T) bool) {
	st := make([]*Node[T], 0, u.Height())
	for cur := u.root; cur != nil; cur = cur.left {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.key) {
			return
		}
		for cur = cur.right; cur != nil; cur = cur.left {
			st = append(st, cur)
		}
	}
}

type leveled[T constraints.Ordered] struct {
	n *Node[T]
	d uint
}

// Levels visits the nodes breadth first, calling f with each node and its depth.
// Stops when f returns false. The tree must not be modified from within f.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) Levels(f func(d uint, n *Node[T]) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[leveled[T]](u.size/2 + 1)
	q.Push(leveled[T]{u.root, 0})
	for !q.Empty() {
		e, _ := q.Pop()
		if !f(e.d, e.n) {
			return
		}
		if e.n.left != nil {
			q.Push(leveled[T]{e.n.left, e.d + 1})
		}
		if e.n.right != nil {
			q.Push(leveled[T]{e.n.right, e.d + 1})
		}
	}
}
