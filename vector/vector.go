package vector

import (
	"iter"

	libstatic "github.com/mdk754/libstatic"
	"github.com/mdk754/libstatic/algo"
	"github.com/mdk754/libstatic/place"
)

// Vector is a bounded contiguous sequence. The zero value is
// unusable; construct with New or one of its variants.
type Vector[T any] struct {
	data []T
	size int
}

// New returns an empty vector owning capacity slots.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{data: make([]T, capacity)}
}

// WithLen returns a vector holding n zero-valued elements, truncated
// to capacity.
func WithLen[T any](capacity, n int) *Vector[T] {
	v := New[T](capacity)
	v.size = min(max(n, 0), capacity)
	return v
}

// WithValue returns a vector holding n copies of val, truncated to
// capacity.
func WithValue[T any](capacity, n int, val T) *Vector[T] {
	v := WithLen[T](capacity, n)
	place.UninitializedFillN(libstatic.Sequence[T](v), v.size, val)
	return v
}

// FromSeq returns a vector constructed from src's elements in order,
// truncated to capacity.
func FromSeq[T any](capacity int, src libstatic.Sequence[T]) *Vector[T] {
	v := WithLen[T](capacity, src.Len())
	place.UninitializedCopyN(libstatic.Sequence[T](v), src, v.size)
	return v
}

// Of returns a vector sized to its arguments and holding them.
func Of[T any](items ...T) *Vector[T] {
	return FromSeq(len(items), algo.Slice(items))
}

// Clone returns an independent copy with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	return FromSeq(v.Cap(), libstatic.Sequence[T](v))
}

// Len reports the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap reports the fixed capacity.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the address of the element at pos. The position is not
// checked against the current length.
func (v *Vector[T]) At(pos int) *T { return &v.data[pos] }

// Data returns the live elements as a slice sharing the vector's
// storage. The slice stays valid across element writes but not across
// sizing operations.
func (v *Vector[T]) Data() []T { return v.data[:v.size] }

// Front returns the address of the first element, nil when empty.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		return nil
	}
	return &v.data[0]
}

// Back returns the address of the last element, nil when empty.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		return nil
	}
	return &v.data[v.size-1]
}

// PushBack appends value. A full vector ignores the push.
func (v *Vector[T]) PushBack(value T) {
	if v.size < len(v.data) {
		place.ConstructAt(&v.data[v.size], value)
		v.size++
	}
}

// PopBack removes the last element. An empty vector ignores the pop.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		place.DestroyAt(&v.data[v.size-1])
		v.size--
	}
}

// Clear removes all elements.
func (v *Vector[T]) Clear() { v.Resize(0) }

// Resize pops from the back while the vector is longer than n and
// pushes zero values while it is shorter, capped at capacity.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeWith(n, zero)
}

// ResizeWith is Resize but grows with copies of value.
func (v *Vector[T]) ResizeWith(n int, value T) {
	for n < v.size {
		v.PopBack()
	}
	for n > v.size && v.size < len(v.data) {
		v.PushBack(value)
	}
}

// Insert inserts value before pos and returns pos. A full vector
// ignores the insert.
func (v *Vector[T]) Insert(pos int, value T) int {
	return v.InsertN(pos, 1, value)
}

// InsertN inserts count copies of value before pos, truncating the
// count to the available capacity, and returns pos.
func (v *Vector[T]) InsertN(pos, count int, value T) int {
	if count <= 0 || v.size >= len(v.data) {
		return pos
	}
	count = min(count, len(v.data)-v.size)
	v.Resize(v.size + count)
	algo.Rotate(algo.Sub(algo.Reversed[T](v), 0, v.size-pos), count)
	algo.Fill(algo.Sub[T](v, pos, pos+count), value)
	return pos
}

// InsertSeq inserts src's elements before pos, truncating to the
// available capacity, and returns pos.
func (v *Vector[T]) InsertSeq(pos int, src libstatic.Sequence[T]) int {
	if src.Len() == 0 || v.size >= len(v.data) {
		return pos
	}
	count := min(src.Len(), len(v.data)-v.size)
	v.Resize(v.size + count)
	algo.Rotate(algo.Sub(algo.Reversed[T](v), 0, v.size-pos), count)
	algo.CopyN(algo.Sub[T](v, pos, pos+count), src, count)
	return pos
}

// Erase removes the element at pos and returns pos.
func (v *Vector[T]) Erase(pos int) int {
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first.
func (v *Vector[T]) EraseRange(first, last int) int {
	if last > v.size {
		last = v.size
	}
	count := last - first
	if count <= 0 {
		return first
	}
	algo.Rotate(algo.Sub[T](v, first, v.size), count)
	v.Resize(v.size - count)
	return first
}

// AssignN replaces the contents with n copies of val, truncated to
// capacity.
func (v *Vector[T]) AssignN(n int, val T) {
	v.Resize(n)
	algo.FillN(libstatic.Sequence[T](v), v.size, val)
}

// AssignSeq replaces the contents with src's elements, truncated to
// capacity.
func (v *Vector[T]) AssignSeq(src libstatic.Sequence[T]) {
	v.Resize(src.Len())
	algo.CopyN(libstatic.Sequence[T](v), src, v.size)
}

// All ranges over index and value in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Backward ranges over index and value from the back.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}
