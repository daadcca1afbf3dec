package algo

import (
	libstatic "github.com/mdk754/libstatic"
)

type sliceSeq[T any] []T

func (s sliceSeq[T]) Len() int    { return len(s) }
func (s sliceSeq[T]) At(i int) *T { return &s[i] }

// Slice adapts ordinary slice storage to the Sequence contract.
func Slice[T any](s []T) libstatic.Sequence[T] {
	return sliceSeq[T](s)
}

type subSeq[T any] struct {
	s      libstatic.Sequence[T]
	lo, hi int
}

func (s subSeq[T]) Len() int    { return s.hi - s.lo }
func (s subSeq[T]) At(i int) *T { return s.s.At(s.lo + i) }

// Sub restricts a sequence to the half-open logical range [lo, hi).
// The adapter borrows the underlying sequence; it is invalidated by
// anything that changes the owner's size.
func Sub[T any](s libstatic.Sequence[T], lo, hi int) libstatic.Sequence[T] {
	return subSeq[T]{s: s, lo: lo, hi: hi}
}

type reversedSeq[T any] struct {
	s libstatic.Sequence[T]
}

func (r reversedSeq[T]) Len() int    { return r.s.Len() }
func (r reversedSeq[T]) At(i int) *T { return r.s.At(r.s.Len() - 1 - i) }

// Reversed presents a sequence walked back to front. Rotating or
// filling the reversed view is how the right-handed forms of those
// operations are expressed.
func Reversed[T any](s libstatic.Sequence[T]) libstatic.Sequence[T] {
	if r, ok := s.(reversedSeq[T]); ok {
		return r.s
	}
	return reversedSeq[T]{s: s}
}
