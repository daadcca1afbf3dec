package algo

import (
	"cmp"

	libstatic "github.com/mdk754/libstatic"
)

// Swap exchanges the elements at logical positions i and j.
func Swap[T any](s libstatic.Sequence[T], i, j int) {
	pi, pj := s.At(i), s.At(j)
	*pi, *pj = *pj, *pi
}

// Reverse reverses the order of the elements in the sequence.
func Reverse[T any](s libstatic.Sequence[T]) {
	for i, j := 0, s.Len()-1; i < j; i, j = i+1, j-1 {
		Swap(s, i, j)
	}
}

// Rotate performs a left rotation: the element at middle becomes the
// first element and the elements before it are carried to the end,
// preserving relative order on both sides. Implemented as the three
// reversals, so it needs nothing beyond positional access. Returns
// the new position of the element that was first, which is
// Len()-middle.
//
// A right rotation is Rotate over the Reversed view.
func Rotate[T any](s libstatic.Sequence[T], middle int) int {
	n := s.Len()
	if middle <= 0 {
		return 0
	}
	if middle >= n {
		return n
	}

	Reverse(Sub(s, 0, middle))
	Reverse(Sub(s, middle, n))
	Reverse(s)

	return n - middle
}

// Fill assigns val to every element of the sequence.
func Fill[T any](s libstatic.Sequence[T], val T) {
	for i := 0; i < s.Len(); i++ {
		*s.At(i) = val
	}
}

// FillN assigns val to the first n elements; a non-positive n is a
// no-op.
func FillN[T any](s libstatic.Sequence[T], n int, val T) {
	for i := 0; i < n; i++ {
		*s.At(i) = val
	}
}

// Copy assigns elements from src into dst pairwise and returns the
// number copied, the smaller of the two lengths.
func Copy[T any](dst, src libstatic.Sequence[T]) int {
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		*dst.At(i) = *src.At(i)
	}
	return n
}

// CopyN assigns the first n elements of src into dst.
func CopyN[T any](dst, src libstatic.Sequence[T], n int) {
	for i := 0; i < n; i++ {
		*dst.At(i) = *src.At(i)
	}
}

// Equal reports whether the two sequences have the same length and
// pairwise-equal elements in logical order.
func Equal[T comparable](a, b libstatic.Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if *a.At(i) != *b.At(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T any](a, b libstatic.Sequence[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(*a.At(i), *b.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders two sequences lexicographically: elements are
// compared pairwise until a difference is found; otherwise the
// shorter sequence sorts first. The result follows the cmp
// convention (-1, 0, +1).
func Compare[T cmp.Ordered](a, b libstatic.Sequence[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T any](a, b libstatic.Sequence[T], compare func(T, T) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := compare(*a.At(i), *b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
