package Trees

import "fmt"

// CorruptError describes the first broken property found in a tree.
type CorruptError struct {
	Key    any    // key of the offending node, nil when the problem isn't tied to a node.
	Reason string // which property is broken.
}

func (e *CorruptError) Error() string {
	if e.Key == nil {
		return "corrupt tree: " + e.Reason
	}
	return fmt.Sprintf("corrupt tree at %v: %s", e.Key, e.Reason)
}

// Check the whole tree for broken ordering, parent links, balance factors,
// AVL balance and the cached size. Returns nil or a *CorruptError. Recursive.
// Time: O(n); Space: O(D)
func (u *AVLTree[T]) Check() error {
	if u.root != nil && u.root.parent != nil {
		return &CorruptError{u.root.key, "root has a parent"}
	}
	_, count, err := u.check(u.root, nil, nil)
	if err != nil {
		return err
	}
	if count != u.size {
		return &CorruptError{nil, fmt.Sprintf("size is %d but %d nodes are linked", u.size, count)}
	}
	return nil
}

// check the subtree rooting at n whose keys must lie in (lo, hi); nil bounds are open.
// Returns the height and node count of the subtree.
func (u *AVLTree[T]) check(n *Node[T], lo, hi *T) (uint, uint, error) {
	if n == nil {
		return 0, 0, nil
	}
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, 0, &CorruptError{n.key, "key out of order"}
	}
	if n.left != nil && n.left.parent != n {
		return 0, 0, &CorruptError{n.left.key, "parent link doesn't match left child"}
	}
	if n.right != nil && n.right.parent != n {
		return 0, 0, &CorruptError{n.right.key, "parent link doesn't match right child"}
	}
	lh, lc, err := u.check(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := u.check(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if bf := int(rh) - int(lh); bf != int(n.bf) {
		return 0, 0, &CorruptError{n.key, fmt.Sprintf("balance factor is %d but heights give %d", n.bf, bf)}
	} else if bf < -1 || bf > 1 {
		return 0, 0, &CorruptError{n.key, fmt.Sprintf("unbalanced with balance factor %d", bf)}
	}
	return max(lh, rh) + 1, lc + rc + 1, nil
}

// Corrupt [Tree.Corrupt]
func (u *AVLTree[T]) Corrupt() bool {
	return u.Check() != nil
}
