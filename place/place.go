package place

import (
	libstatic "github.com/mdk754/libstatic"
)

// ConstructAt writes v into the slot at p. The slot must currently
// be dead; constructing over a live slot leaks whatever teardown the
// old value needed. There is no failure path.
func ConstructAt[T any](p *T, v T) {
	*p = v
}

// ZeroAt constructs the zero value in the slot at p. Default and
// value construction both collapse onto the zero value in Go.
func ZeroAt[T any](p *T) {
	var zero T
	*p = zero
}

// DestroyAt tears down the live value in the slot at p. If *T
// implements libstatic.Destroyer the hook runs and the slot keeps
// whatever it wrote; otherwise the slot is zeroed so references it
// held are released. Destroying a dead slot is undefined: the hook
// would run against stale bytes.
func DestroyAt[T any](p *T) {
	if d, ok := any(p).(libstatic.Destroyer); ok {
		d.Destroy()
		return
	}
	var zero T
	*p = zero
}

// UninitializedCopy constructs copies of src's elements into dst's
// slots pairwise and returns the number constructed, the smaller of
// the two lengths.
func UninitializedCopy[T any](dst, src libstatic.Sequence[T]) int {
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		ConstructAt(dst.At(i), *src.At(i))
	}
	return n
}

// UninitializedCopyN constructs the first n elements of src into
// dst. A non-positive n is a no-op.
func UninitializedCopyN[T any](dst, src libstatic.Sequence[T], n int) {
	for i := 0; i < n; i++ {
		ConstructAt(dst.At(i), *src.At(i))
	}
}

// UninitializedFill constructs a copy of val in every slot of dst.
func UninitializedFill[T any](dst libstatic.Sequence[T], val T) {
	for i := 0; i < dst.Len(); i++ {
		ConstructAt(dst.At(i), val)
	}
}

// UninitializedFillN constructs a copy of val in the first n slots.
func UninitializedFillN[T any](dst libstatic.Sequence[T], n int, val T) {
	for i := 0; i < n; i++ {
		ConstructAt(dst.At(i), val)
	}
}

// UninitializedZero constructs the zero value in every slot of dst.
func UninitializedZero[T any](dst libstatic.Sequence[T]) {
	for i := 0; i < dst.Len(); i++ {
		ZeroAt(dst.At(i))
	}
}

// UninitializedZeroN constructs the zero value in the first n slots.
func UninitializedZeroN[T any](dst libstatic.Sequence[T], n int) {
	for i := 0; i < n; i++ {
		ZeroAt(dst.At(i))
	}
}

// Destroy tears down every live element of s.
func Destroy[T any](s libstatic.Sequence[T]) {
	for i := 0; i < s.Len(); i++ {
		DestroyAt(s.At(i))
	}
}

// DestroyN tears down the first n live elements of s.
func DestroyN[T any](s libstatic.Sequence[T], n int) {
	for i := 0; i < n; i++ {
		DestroyAt(s.At(i))
	}
}
