// Package optional implements a value that may be absent, stored
// inline without allocation.
package optional

import (
	"cmp"

	"github.com/mdk754/libstatic/place"
)

// Optional holds either a value of T or nothing. The zero Optional is
// empty.
type Optional[T any] struct {
	val T
	ok  bool
}

// Of returns an optional holding v.
func Of[T any](v T) Optional[T] {
	return Optional[T]{val: v, ok: true}
}

// None returns an empty optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// HasValue reports whether a value is present.
func (o Optional[T]) HasValue() bool { return o.ok }

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) { return o.val, o.ok }

// GetOr returns the held value, or def when empty.
func (o Optional[T]) GetOr(def T) T {
	if o.ok {
		return o.val
	}
	return def
}

// Ptr returns the address of the held value, nil when empty. The
// address is the optional's own storage, so it stays valid until
// Reset; call it on the stored optional, not on a copy.
func (o *Optional[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	return &o.val
}

// Set stores v, replacing any held value in place.
func (o *Optional[T]) Set(v T) {
	o.val = v
	o.ok = true
}

// Reset empties the optional, running the held value's destroy hook.
// An empty optional is left unchanged.
func (o *Optional[T]) Reset() {
	if o.ok {
		place.DestroyAt(&o.val)
		var zero T
		o.val = zero
		o.ok = false
	}
}

// Equal reports whether two optionals are both empty or hold equal
// values.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.val == b.val
}

// Compare orders two optionals. An empty optional sorts before any
// held value.
func Compare[T cmp.Ordered](a, b Optional[T]) int {
	switch {
	case a.ok && b.ok:
		return cmp.Compare(a.val, b.val)
	case a.ok:
		return 1
	case b.ok:
		return -1
	}
	return 0
}
