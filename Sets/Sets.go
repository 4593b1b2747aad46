package Sets

type Set[E any] interface {
	//Put e into the set. Returns true if e wasn't present.
	Put(E) bool
	Has(E) bool
	//Remove e from the set. Returns true if e was present.
	Remove(E) bool
	Size() uint
	//Take an arbitrary element, the zero value if the set is empty.
	Take() E
	//Range calls f on the elements until f returns false.
	Range(func(E) bool)
}
