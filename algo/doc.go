// Package algo implements the generic sequence algorithms the
// containers are assembled from: swap, reverse, three-reversal
// rotation, fill, copy, and the equality and lexicographic
// comparison primitives.
//
// Everything operates through the libstatic.Sequence contract, so
// the same rotation that shuffles a plain slice also shuffles a ring
// buffer; the container's At method is the only place physical
// layout leaks in. Sub, Reversed and Slice are the adapters that let
// a caller aim an algorithm at part of a sequence, at a sequence
// walked back-to-front, or at ordinary slice storage. A right
// rotation is a left rotation of the Reversed view.
package algo
