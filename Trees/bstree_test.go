package Trees

import (
	"slices"
	"testing"
)

func TestBSTree_All(t *testing.T) {
	tree := MakeBSTree[int]()
	for _, v := range []int{8, 4, 12, 2, 6, 10, 14} {
		if !tree.Insert(v) {
			t.Errorf("failed to insert %d", v)
		}
		if tree.Insert(v) {
			t.Errorf("inserted %d twice", v)
		}
	}
	if tree.Size() != 7 || tree.Height() != 3 {
		t.Errorf("size %d height %d, want 7 and 3", tree.Size(), tree.Height())
	}
	for _, v := range []int{2, 12, 8} { // leaf, two children, root
		if !tree.Remove(v) {
			t.Errorf("failed to remove %d", v)
		}
		if tree.Remove(v) {
			t.Errorf("removed %d twice", v)
		}
	}
	if got := keys(tree); !slices.Equal(got, []int{4, 6, 10, 14}) {
		t.Errorf("wrong content %v", got)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	if a, _ := tree.Minimum(); a != 4 {
		t.Errorf("wrong minimum %d", a)
	}
	if a, _ := tree.Maximum(); a != 14 {
		t.Errorf("wrong maximum %d", a)
	}
	if a, ok := tree.Predecessor(10); !ok || a != 6 {
		t.Errorf("wrong predecessor %d", a)
	}
	if a, ok := tree.Successor(10); !ok || a != 14 {
		t.Errorf("wrong successor %d", a)
	}
	if _, ok := tree.Successor(14); ok {
		t.Error("shouldn't have successor")
	}
}

func TestBSTree_Degenerate(t *testing.T) {
	const n = 2000
	plain, avl := MakeBSTree[int](), MakeAVLTree[int]()
	for v := range n {
		plain.Insert(v)
		avl.Insert(v)
	}
	if plain.Height() != n {
		t.Errorf("sorted input should give a list, height %d", plain.Height())
	}
	if avl.Height() > 12 {
		t.Errorf("avl height %d for %d sorted values", avl.Height(), n)
	}
}

func TestBSTree_InOrderStop(t *testing.T) {
	tree := MakeBSTree[int]()
	for _, v := range rg.Perm(500) {
		tree.Insert(v)
	}
	count := 0
	tree.InOrder(func(int) bool {
		count++
		return count < 100
	})
	if count != 100 {
		t.Errorf("visited %d, want 100", count)
	}
	// threads added by the traversal must be gone.
	if tree.Corrupt() || tree.Height() > 500 {
		t.Error("tree is corrupt after an early stop")
	}
	if got := keys(tree); len(got) != 500 || !slices.IsSorted(got) {
		t.Error("wrong content after an early stop")
	}
}
