package deque

import (
	"cmp"

	libstatic "github.com/mdk754/libstatic"
	"github.com/mdk754/libstatic/algo"
)

// Equal reports whether two deques hold equal elements in the same
// logical order. Capacity does not participate.
func Equal[T comparable](a, b *Deque[T]) bool {
	return algo.Equal[T](a, b)
}

// Compare orders two deques lexicographically over their logical
// sequences.
func Compare[T cmp.Ordered](a, b *Deque[T]) int {
	return algo.Compare[T](a, b)
}

// Convert replaces dst's contents with src's elements passed through
// conv, truncated to dst's capacity. This is how a deque is assigned
// from a sequence of a compatible but distinct element type.
func Convert[S, T any](dst *Deque[T], src libstatic.Sequence[S], conv func(S) T) {
	dst.Resize(src.Len())
	for i := 0; i < dst.Len(); i++ {
		*dst.At(i) = conv(*src.At(i))
	}
}
