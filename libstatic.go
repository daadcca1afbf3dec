package libstatic

// Sequence is the contract the generic algorithms operate through. A
// sequence exposes a logical, zero-based ordering over its slots; At
// returns the address of the slot so algorithms can read and write in
// place. Only At performs any physical remapping (the deque resolves
// its ring arithmetic there), so iteration cost is a pointer lookup
// per position.
//
// At's behavior is undefined for positions outside [0, Len()).
type Sequence[T any] interface {
	// Len returns the number of live elements in logical order.
	Len() int
	// At returns the address of the element at logical position i.
	At(i int) *T
}

// Destroyer is implemented by element types that need an observable
// teardown when a container slot is destroyed. Implement it on the
// pointer receiver; place.DestroyAt invokes it instead of zeroing the
// slot, so anything Destroy writes (such as a sentinel) stays in the
// slot bytes.
type Destroyer interface {
	Destroy()
}
