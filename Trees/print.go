package Trees

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Print an ASCII drawing of the tree to w, one node per line with its balance factor.
// Left children are drawn with "|-- " and right children or the root with "\-- ".
// Recursive.
func (u *AVLTree[T]) Print(w io.Writer) {
	if u.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	_print(w, "", u.root, false)
}

func _print[T constraints.Ordered](w io.Writer, prefix string, n *Node[T], isLeft bool) {
	if n == nil {
		return
	}
	branch, next := "\\-- ", "    "
	if isLeft {
		branch, next = "|-- ", "|   "
	}
	fmt.Fprintf(w, "%s%s%v [%+d]\n", prefix, branch, n.key, n.bf)
	_print(w, prefix+next, n.left, true)
	_print(w, prefix+next, n.right, false)
}
