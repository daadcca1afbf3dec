package vector

import (
	"cmp"

	libstatic "github.com/mdk754/libstatic"
	"github.com/mdk754/libstatic/algo"
)

// Equal reports element-wise equality. Capacity does not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	return algo.Equal(libstatic.Sequence[T](a), libstatic.Sequence[T](b))
}

// Compare orders two vectors lexicographically. A prefix sorts before
// any sequence it prefixes.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return algo.Compare(libstatic.Sequence[T](a), libstatic.Sequence[T](b))
}

// Convert assigns src's elements through conv, truncated to dst's
// capacity.
func Convert[S, T any](dst *Vector[T], src libstatic.Sequence[S], conv func(S) T) {
	dst.Resize(src.Len())
	for i := 0; i < dst.Len(); i++ {
		*dst.At(i) = conv(*src.At(i))
	}
}
