package Trees

import "golang.org/x/exp/constraints"

// Node in the AVLTree.
// A Node returned by the tree is a read-only handle; it stays valid until the
// next call that modifies the tree.
type Node[T constraints.Ordered] struct {
	key                 T
	left, right, parent *Node[T]
	bf                  int8 // height(right)-height(left), always in [-1,1] between operations.
}

// Key held by the node.
func (n *Node[T]) Key() T {
	return n.key
}

// Bf is the balance factor of the node: height of the right subtree minus height of the left subtree.
func (n *Node[T]) Bf() int8 {
	return n.bf
}

// Left child, nil if there is none.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right child, nil if there is none.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent of the node, nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Equal compares the keys of two nodes.
func (n *Node[T]) Equal(o *Node[T]) bool {
	return n.key == o.key
}

// Depth of the node, the root has depth 0.
// Time: O(D); Space: O(1)
func (n *Node[T]) Depth() uint {
	d := uint(0)
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// side of c relative to its parent p: -1 if c is the left child, +1 otherwise.
func side[T constraints.Ordered](p, c *Node[T]) int8 {
	if p.left == c {
		return -1
	}
	return 1
}

// leftmost node of the subtree rooting at n.
func leftmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T constraints.Ordered](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
