package deque

import "iter"

// Iterator is a bidirectional cursor over a deque: a container
// pointer plus a logical position. Moving it is plain integer
// arithmetic; only Ptr and Value touch the ring mapping. Iterators
// are values; Next and friends return moved copies.
type Iterator[T any] struct {
	d   *Deque[T]
	pos int
}

// Begin returns an iterator at the first element.
func (d *Deque[T]) Begin() Iterator[T] { return Iterator[T]{d: d} }

// End returns an iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] { return Iterator[T]{d: d, pos: d.size} }

// Pos returns the iterator's logical position.
func (it Iterator[T]) Pos() int { return it.pos }

// Valid reports whether the iterator addresses a live element.
func (it Iterator[T]) Valid() bool {
	return it.d != nil && it.pos >= 0 && it.pos < it.d.size
}

// Next returns the iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos++
	return it
}

// Prev returns the iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos--
	return it
}

// Add returns the iterator moved forward n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the iterator moved back n positions.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// Ptr returns the address of the element at the current position.
func (it Iterator[T]) Ptr() *T { return it.d.At(it.pos) }

// Value returns the element at the current position.
func (it Iterator[T]) Value() T { return *it.d.At(it.pos) }

// Set assigns v to the element at the current position.
func (it Iterator[T]) Set(v T) { *it.d.At(it.pos) = v }

// Equal reports whether two iterators address the same position of
// the same deque.
func (it Iterator[T]) Equal(rhs Iterator[T]) bool {
	return it.d == rhs.d && it.pos == rhs.pos
}

// All returns the elements in logical order for range-over-func
// loops, keyed by logical position.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(i, *d.At(i)) {
				return
			}
		}
	}
}

// Backward returns the elements in reverse logical order, keyed by
// logical position.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.size - 1; i >= 0; i-- {
			if !yield(i, *d.At(i)) {
				return
			}
		}
	}
}
