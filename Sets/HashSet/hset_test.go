package HashSet

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	Go_Utils "github.com/g-m-twostay/go-avl"
	"github.com/g-m-twostay/go-avl/Sets"
)

var rg = *rand.New(rand.NewSource(0))

var _ Sets.Set[int] = (*HashSet[int])(nil)

func TestHashSet_All(t *testing.T) {
	S := New[int](7, 0)
	for i := 0; i < 100; i++ {
		if !S.Put(i) {
			t.Error("wrong put 1")
		}
		if S.Put(i) {
			t.Error("wrong put 2")
		}
	}
	for i := 0; i < 100; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 50; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Remove(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 50; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	if S.Size() != 50 {
		t.Errorf("set size is %d, want 50", S.Size())
	}
	if err := S.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestHashSet_Collisions(t *testing.T) {
	S := NewWithHash[int](4, func(int) uint64 { return 3 })
	content := make(map[int]struct{})
	for range 5000 {
		v := rg.Intn(10000)
		S.Put(v)
		content[v] = struct{}{}
	}
	bins := S.Bins()
	if bins[3] != uint(len(content)) || bins[0]+bins[1]+bins[2] != 0 {
		t.Errorf("wrong bins %v", bins)
	}
	if h := S.Bucket(3).Height(); h > 18 {
		t.Errorf("bucket height %d for %d elements", h, len(content))
	}
	if err := S.Check(); err != nil {
		t.Fatal(err)
	}
	for k := range content {
		if !S.Has(k) {
			t.Errorf("set does not have %d", k)
		}
	}
}

func TestHashSet_TakeRange(t *testing.T) {
	S := New[string](15, 42)
	if S.Take() != "" {
		t.Error("empty set gave an element")
	}
	content := make(map[string]struct{})
	for i := range 300 {
		s := strconv.Itoa(i * 7)
		S.Put(s)
		content[s] = struct{}{}
	}
	if _, in := content[S.Take()]; !in {
		t.Error("took a non existent element")
	}
	seen := make(map[string]struct{})
	S.Range(func(s string) bool {
		seen[s] = struct{}{}
		return true
	})
	if len(seen) != len(content) {
		t.Errorf("range saw %d, want %d", len(seen), len(content))
	}
	count := 0
	S.Range(func(string) bool {
		count++
		return count < 10
	})
	if count != 10 {
		t.Errorf("range didn't stop, saw %d", count)
	}
	S.Clear()
	if S.Size() != 0 || S.Take() != "" || S.Has("0") {
		t.Error("set isn't empty after Clear")
	}
	if err := S.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestHashSet_RandomOps(t *testing.T) {
	S := New[int](31, Go_Utils.Hasher(rg.Uint64()))
	content := make(map[int]struct{})
	for i := range 40000 {
		v := rg.Intn(8000)
		if rg.Intn(2) == 0 {
			_, in := content[v]
			if S.Remove(v) != in {
				t.Fatalf("wrong remove %d", v)
			}
			delete(content, v)
		} else {
			_, in := content[v]
			if S.Put(v) == in {
				t.Fatalf("wrong put %d", v)
			}
			content[v] = struct{}{}
		}
		if i%1000 == 0 {
			if err := S.Check(); err != nil {
				t.Fatal(err)
			}
		}
	}
	if S.Size() != uint(len(content)) {
		t.Errorf("set size is %d, want %d", S.Size(), len(content))
	}
}

func TestHashSet_NamedFloatZero(t *testing.T) {
	type celsius float64
	S := New[celsius](16, 5)
	S.Put(0)
	if S.Put(celsius(math.Copysign(0, -1))) || S.Size() != 1 {
		t.Errorf("0 and -0 stored apart, size %d", S.Size())
	}
	if !S.Remove(celsius(math.Copysign(0, -1))) || S.Size() != 0 {
		t.Error("-0 didn't remove 0")
	}
	if err := S.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestNew_ZeroBuckets(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for 0 buckets")
		}
	}()
	New[int](0, 0)
}
