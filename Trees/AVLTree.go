package Trees

import (
	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It keeps the
// heights of the two subtrees of every node within 1 of each other
// through rotations. Instead of heights, each node stores its balance
// factor, which is updated on the way up from the point of modification.
// Every node also links to its parent so that both insertion and removal
// run iteratively.
// The worst case height of the tree is less than 1.44*log2(n+2)-0.33,
// so D, the height, is of O(log n).
// The zero value is an empty tree ready to use.
type AVLTree[T constraints.Ordered] struct {
	root *Node[T] //nil when empty.
	size uint
}

// MakeAVLTree returns an empty AVLTree.
func MakeAVLTree[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{}
}

// Root of the tree, nil if the tree is empty.
func (u *AVLTree[T]) Root() *Node[T] {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.size
}

func (u *AVLTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Search for the node holding v. Returns nil if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Search(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if v < cur.key {
			cur = cur.left
		} else if v == cur.key {
			return cur
		} else {
			cur = cur.right
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	return u.Search(v) != nil
}

// Insert [Tree.Insert]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &Node[T]{key: v}
		u.size = 1
		return true
	}
	cur := u.root
	var dir int8
	for {
		if v < cur.key {
			if cur.left == nil {
				cur.left = &Node[T]{key: v, parent: cur}
				dir = -1
				break
			}
			cur = cur.left
		} else if v == cur.key {
			return false
		} else {
			if cur.right == nil {
				cur.right = &Node[T]{key: v, parent: cur}
				dir = 1
				break
			}
			cur = cur.right
		}
	}
	u.size++
	u.retraceInsert(cur, dir)
	return true
}

// retraceInsert walks up from p after the subtree on side dir of p grew by one.
// It stops as soon as a subtree keeps its height; a rotation always restores
// the height the subtree had before the insertion, so at most one happens.
func (u *AVLTree[T]) retraceInsert(p *Node[T], dir int8) {
	for {
		p.bf += dir
		switch p.bf {
		case 0:
			return
		case -1, 1:
			g := p.parent
			if g == nil {
				return
			}
			dir = side(g, p)
			p = g
		default:
			u.rebalance(p)
			return
		}
	}
}

// Remove [Tree.Remove]
// A node with two children is replaced by its in-order successor node, the
// values are never copied between nodes.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Remove(v T) bool {
	x := u.Search(v)
	if x == nil {
		return false
	}
	var (
		start *Node[T] // where the retrace begins.
		dir   int8     // the side of start that got shorter.
	)
	p := x.parent
	if x.left != nil && x.right != nil {
		s := leftmost(x.right)
		if s == x.right {
			start, dir = s, 1
		} else {
			sp := s.parent
			sp.left = s.right
			if s.right != nil {
				s.right.parent = sp
			}
			s.right = x.right
			s.right.parent = s
			start, dir = sp, -1
		}
		s.left = x.left
		s.left.parent = s
		s.bf = x.bf
		u.reattach(p, x, s)
	} else {
		c := x.left
		if c == nil {
			c = x.right
		}
		if p != nil {
			start, dir = p, side(p, x)
		}
		if c != nil {
			u.reattach(p, x, c)
		} else if p == nil {
			u.root = nil
		} else if dir < 0 {
			p.left = nil
		} else {
			p.right = nil
		}
	}
	x.left, x.right, x.parent = nil, nil, nil
	u.size--
	if start != nil {
		u.retraceRemove(start, dir)
	}
	return true
}

// retraceRemove walks up from n after the subtree on side dir of n shrank by one.
// Unlike insertion, a rotation may leave the subtree one shorter, in which
// case the walk goes on from the new subtree root.
func (u *AVLTree[T]) retraceRemove(n *Node[T], dir int8) {
	for {
		n.bf -= dir
		switch n.bf {
		case -1, 1:
			return
		case 0:
		default:
			if n = u.rebalance(n); n.bf != 0 {
				return
			}
		}
		p := n.parent
		if p == nil {
			return
		}
		dir = side(p, n)
		n = p
	}
}

// Clear removes all the elements. Nodes are unlinked children first so that
// no handle obtained earlier keeps the rest of the tree reachable.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) Clear() {
	if u.root == nil {
		return
	}
	st := make([]*Node[T], 1, u.Height())
	st[0] = u.root
	for len(st) > 0 {
		top := st[len(st)-1]
		if top.left != nil {
			st = append(st, top.left)
			top.left = nil
		} else if top.right != nil {
			st = append(st, top.right)
			top.right = nil
		} else {
			top.parent = nil
			st = st[:len(st)-1]
		}
	}
	u.root, u.size = nil, 0
}
