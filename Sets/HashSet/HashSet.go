package HashSet

import (
	Go_Utils "github.com/g-m-twostay/go-avl"
	"github.com/g-m-twostay/go-avl/Trees"
	"golang.org/x/exp/constraints"
)

// HashSet is a chained hash table of elements of type E. The number of buckets
// is fixed at creation and every bucket is an AVLTree, so a bucket holding b
// elements is searched in O(log b) even when many elements collide.
// HashSet isn't safe for concurrent use.
type HashSet[E constraints.Ordered] struct {
	bkt     []Trees.AVLTree[E]
	usedBkt Go_Utils.BitArray // bit i is up when bkt[i] is not empty.
	hash    func(E) uint64
	sz      uint
}

// New HashSet of type E with the given number of buckets, hashing with Go_Utils.Func(seed).
// Panics if buckets is 0.
func New[E constraints.Ordered](buckets uint, seed Go_Utils.Hasher) *HashSet[E] {
	return NewWithHash[E](buckets, Go_Utils.Func[E](seed))
}

// NewWithHash is New with a caller supplied hash function.
func NewWithHash[E constraints.Ordered](buckets uint, hash func(E) uint64) *HashSet[E] {
	if buckets == 0 {
		panic("HashSet: bucket count must be positive")
	}
	return &HashSet[E]{bkt: make([]Trees.AVLTree[E], buckets), usedBkt: Go_Utils.NewBitArray(int(buckets)), hash: hash}
}

func (u *HashSet[E]) index(e E) int {
	return int(u.hash(e) % uint64(len(u.bkt)))
}

// Size of the set.
// Time: O(1)
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Put e into the set. Returns true if e wasn't present.
// Time: O(log b) where b is the size of the bucket of e.
func (u *HashSet[E]) Put(e E) bool {
	i := u.index(e)
	if !u.bkt[i].Insert(e) {
		return false
	}
	u.usedBkt.Set(i)
	u.sz++
	return true
}

// Has e in the set.
// Time: O(log b)
func (u *HashSet[E]) Has(e E) bool {
	return u.bkt[u.index(e)].Has(e)
}

// Remove e from the set. Returns true if e was present.
// Time: O(log b)
func (u *HashSet[E]) Remove(e E) bool {
	i := u.index(e)
	if !u.bkt[i].Remove(e) {
		return false
	}
	if u.bkt[i].IsEmpty() {
		u.usedBkt.Clr(i)
	}
	u.sz--
	return true
}

// Take an arbitrary element from the set without removing it. Returns the zero value if the set is empty.
// It is the root of the first non-empty bucket.
func (u *HashSet[E]) Take() (e E) {
	if i := u.usedBkt.First(); i > -1 {
		e = u.bkt[i].Root().Key()
	}
	return
}

// Range over the elements bucket by bucket, each bucket in ascending order.
// Stops when f returns false. The set must not be modified from within f.
func (u *HashSet[E]) Range(f func(E) bool) {
	stopped := false
	for i := range u.bkt {
		if !u.usedBkt.Get(i) {
			continue
		}
		u.bkt[i].InOrder(func(e E) bool {
			stopped = !f(e)
			return !stopped
		})
		if stopped {
			return
		}
	}
}

// Bins returns the number of elements held by every bucket.
func (u *HashSet[E]) Bins() []uint {
	bins := make([]uint, len(u.bkt))
	for i := range u.bkt {
		bins[i] = u.bkt[i].Size()
	}
	return bins
}

// Bucket of index i. Read only; i must be less than len(Bins()).
func (u *HashSet[E]) Bucket(i int) *Trees.AVLTree[E] {
	return &u.bkt[i]
}

// Check every bucket with Trees.AVLTree.Check and that every element sits in the bucket it hashes to.
func (u *HashSet[E]) Check() error {
	var total uint
	for i := range u.bkt {
		if err := u.bkt[i].Check(); err != nil {
			return err
		}
		var misplaced *E
		u.bkt[i].InOrder(func(e E) bool {
			if u.index(e) != i {
				misplaced = &e
				return false
			}
			return true
		})
		if misplaced != nil {
			return &Trees.CorruptError{Key: *misplaced, Reason: "element is in the wrong bucket"}
		}
		if u.usedBkt.Get(i) == u.bkt[i].IsEmpty() {
			return &Trees.CorruptError{Reason: "bucket usage flag is stale"}
		}
		total += u.bkt[i].Size()
	}
	if total != u.sz {
		return &Trees.CorruptError{Reason: "size doesn't match the buckets"}
	}
	return nil
}

// Clear the set, keeping the buckets.
func (u *HashSet[E]) Clear() {
	for i := range u.bkt {
		u.bkt[i].Clear()
	}
	u.usedBkt.Reset()
	u.sz = 0
}
