package Trees

import "golang.org/x/exp/constraints"

// The rotations below take the unbalanced node x and its taller child z and
// return the new root of the local subtree. Parent links inside the subtree
// are fixed; the parent link of the returned node and the slot that used to
// hold x are left to the caller, see reattach.

// rotateLeft promotes the right child z of x.
//
//	  x               z
//	 / \             / \
//	a   z     ->    x   c
//	   / \         / \
//	  b   c       a   b
//
// Time: O(1); Space: O(1)
func rotateLeft[T constraints.Ordered](x, z *Node[T]) *Node[T] {
	b := z.left
	x.right = b
	if b != nil {
		b.parent = x
	}
	z.left = x
	x.parent = z
	if z.bf == 0 { // only possible when removing
		x.bf, z.bf = 1, -1
	} else {
		x.bf, z.bf = 0, 0
	}
	return z
}

// rotateRight promotes the left child z of x. It mirrors rotateLeft.
// Time: O(1); Space: O(1)
func rotateRight[T constraints.Ordered](x, z *Node[T]) *Node[T] {
	b := z.right
	x.left = b
	if b != nil {
		b.parent = x
	}
	z.right = x
	x.parent = z
	if z.bf == 0 {
		x.bf, z.bf = -1, 1
	} else {
		x.bf, z.bf = 0, 0
	}
	return z
}

// rotateRightLeft promotes y, the left child of the right child z of x.
//
//	  x                  y
//	 / \               /   \
//	a   z             x     z
//	   / \     ->    / \   / \
//	  y   d         a   b c   d
//	 / \
//	b   c
//
// Time: O(1); Space: O(1)
func rotateRightLeft[T constraints.Ordered](x, z *Node[T]) *Node[T] {
	y := z.left
	b, c := y.left, y.right
	z.left = c
	if c != nil {
		c.parent = z
	}
	x.right = b
	if b != nil {
		b.parent = x
	}
	y.left, y.right = x, z
	x.parent, z.parent = y, y
	switch {
	case y.bf > 0:
		x.bf, z.bf = -1, 0
	case y.bf < 0:
		x.bf, z.bf = 0, 1
	default:
		x.bf, z.bf = 0, 0
	}
	y.bf = 0
	return y
}

// rotateLeftRight promotes y, the right child of the left child z of x. It mirrors rotateRightLeft.
// Time: O(1); Space: O(1)
func rotateLeftRight[T constraints.Ordered](x, z *Node[T]) *Node[T] {
	y := z.right
	b, c := y.left, y.right
	z.right = b
	if b != nil {
		b.parent = z
	}
	x.left = c
	if c != nil {
		c.parent = x
	}
	y.left, y.right = z, x
	x.parent, z.parent = y, y
	switch {
	case y.bf < 0:
		x.bf, z.bf = 1, 0
	case y.bf > 0:
		x.bf, z.bf = 0, -1
	default:
		x.bf, z.bf = 0, 0
	}
	y.bf = 0
	return y
}

// reattach n into the slot of p that used to hold old, or makes n the root when p is nil.
func (u *AVLTree[T]) reattach(p, old, n *Node[T]) {
	n.parent = p
	if p == nil {
		u.root = n
	} else if p.left == old {
		p.left = n
	} else {
		p.right = n
	}
}

// rebalance the subtree rooting at x, which must have a balance factor of +2 or -2.
// The rotation is picked by the sign of bf(x) and the balance factor of its taller child.
// Returns the new root of the subtree, already attached to the tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) rebalance(x *Node[T]) *Node[T] {
	p := x.parent
	var n *Node[T]
	if x.bf > 0 {
		if z := x.right; z.bf >= 0 {
			n = rotateLeft(x, z)
		} else {
			n = rotateRightLeft(x, z)
		}
	} else {
		if z := x.left; z.bf <= 0 {
			n = rotateRight(x, z)
		} else {
			n = rotateLeftRight(x, z)
		}
	}
	u.reattach(p, x, n)
	return n
}
