package deque

import (
	libstatic "github.com/mdk754/libstatic"
	"github.com/mdk754/libstatic/algo"
	"github.com/mdk754/libstatic/place"
)

// Deque is a bounded double-ended sequence over a ring buffer. The
// zero value is unusable; construct with New or one of its variants.
type Deque[T any] struct {
	data []T
	size int
	head int
	tail int
}

// New returns an empty deque owning capacity slots.
func New[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Deque[T]{
		data: make([]T, capacity),
		tail: capacity - 1,
	}
}

// WithLen returns a deque holding n zero-valued elements, truncated
// to capacity.
func WithLen[T any](capacity, n int) *Deque[T] {
	d := New[T](capacity)
	d.grow(n)
	place.UninitializedZeroN(libstatic.Sequence[T](d), d.size)
	return d
}

// WithValue returns a deque holding n copies of val, truncated to
// capacity.
func WithValue[T any](capacity, n int, val T) *Deque[T] {
	d := New[T](capacity)
	d.grow(n)
	place.UninitializedFillN(libstatic.Sequence[T](d), d.size, val)
	return d
}

// FromSeq returns a deque constructed from src's elements in logical
// order, truncated to capacity. Sources larger than capacity keep
// exactly their first capacity elements.
func FromSeq[T any](capacity int, src libstatic.Sequence[T]) *Deque[T] {
	d := New[T](capacity)
	d.grow(src.Len())
	place.UninitializedCopyN(libstatic.Sequence[T](d), src, d.size)
	return d
}

// Of returns a deque sized to its arguments and holding them.
func Of[T any](items ...T) *Deque[T] {
	return FromSeq(len(items), algo.Slice(items))
}

// Clone returns a deque with the same capacity and contents.
func (d *Deque[T]) Clone() *Deque[T] {
	return FromSeq[T](len(d.data), d)
}

// grow claims n live slots for a freshly constructed deque, capping
// at capacity. Slots are left unconstructed for the caller.
func (d *Deque[T]) grow(n int) {
	d.size = min(max(n, 0), len(d.data))
	if d.size > 0 {
		d.tail = d.size - 1
	}
}

// Len returns the number of elements in the container.
func (d *Deque[T]) Len() int { return d.size }

// Cap returns the maximum possible number of elements.
func (d *Deque[T]) Cap() int { return len(d.data) }

// Empty reports whether the container has no elements.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// At returns the address of the element at logical position pos.
// Used by iterators and algorithms; pos must be in [0, Len()).
func (d *Deque[T]) At(pos int) *T {
	return &d.data[d.indexAt(pos)]
}

// AtMod returns the address of the element at pos folded modulo
// capacity. Out-of-range input is not rejected: the index wraps and
// some valid slot is always returned. Callers wanting bounds
// enforcement must check Len themselves. Nil only when the deque has
// no capacity at all.
func (d *Deque[T]) AtMod(pos int) *T {
	if len(d.data) == 0 {
		return nil
	}
	pos %= len(d.data)
	if pos < 0 {
		pos += len(d.data)
	}
	return &d.data[d.indexAt(pos)]
}

// Front returns the address of the first element, or nil when empty.
func (d *Deque[T]) Front() *T {
	if d.size == 0 {
		return nil
	}
	return &d.data[d.head]
}

// Back returns the address of the last element, or nil when empty.
func (d *Deque[T]) Back() *T {
	if d.size == 0 {
		return nil
	}
	return &d.data[d.tail]
}

// PushBack appends value. A full deque ignores the push.
func (d *Deque[T]) PushBack(value T) {
	if d.size < len(d.data) {
		d.size++
		d.tail = d.incIndex(d.tail)
		place.ConstructAt(&d.data[d.tail], value)
	}
}

// PopBack removes the last element. An empty deque ignores the pop.
func (d *Deque[T]) PopBack() {
	if d.size > 0 {
		place.DestroyAt(&d.data[d.tail])
		d.tail = d.decIndex(d.tail)
		d.size--
	}
}

// PushFront prepends value. A full deque ignores the push.
func (d *Deque[T]) PushFront(value T) {
	if d.size < len(d.data) {
		d.size++
		d.head = d.decIndex(d.head)
		place.ConstructAt(&d.data[d.head], value)
	}
}

// PopFront removes the first element. An empty deque ignores the
// pop.
func (d *Deque[T]) PopFront() {
	if d.size > 0 {
		place.DestroyAt(&d.data[d.head])
		d.head = d.incIndex(d.head)
		d.size--
	}
}

// Clear removes all elements.
func (d *Deque[T]) Clear() { d.Resize(0) }

// Resize pops from the back while the deque is longer than n and
// pushes zero values while it is shorter, capped at capacity.
func (d *Deque[T]) Resize(n int) {
	var zero T
	d.ResizeWith(n, zero)
}

// ResizeWith is Resize but grows with copies of value.
func (d *Deque[T]) ResizeWith(n int, value T) {
	for n < d.size {
		d.PopBack()
	}
	for n > d.size && d.size < len(d.data) {
		d.PushBack(value)
	}
}

// Insert inserts value before logical position pos and returns pos.
// A full deque ignores the insert.
func (d *Deque[T]) Insert(pos int, value T) int {
	return d.InsertN(pos, 1, value)
}

// InsertN inserts count copies of value before pos, truncating the
// count to the available capacity, and returns pos. The vacancy is
// opened by growing at the back and right-rotating the tail segment,
// which is the left rotation applied to the reversed view.
func (d *Deque[T]) InsertN(pos, count int, value T) int {
	if count <= 0 || d.size >= len(d.data) {
		return pos
	}
	count = min(count, len(d.data)-d.size)
	d.Resize(d.size + count)
	algo.Rotate(algo.Sub(algo.Reversed[T](d), 0, d.size-pos), count)
	algo.Fill(algo.Sub[T](d, pos, pos+count), value)
	return pos
}

// InsertSeq inserts src's elements before pos, truncating to the
// available capacity, and returns pos.
func (d *Deque[T]) InsertSeq(pos int, src libstatic.Sequence[T]) int {
	if src.Len() == 0 || d.size >= len(d.data) {
		return pos
	}
	count := min(src.Len(), len(d.data)-d.size)
	d.Resize(d.size + count)
	algo.Rotate(algo.Sub(algo.Reversed[T](d), 0, d.size-pos), count)
	algo.CopyN(algo.Sub[T](d, pos, pos+count), src, count)
	return pos
}

// Erase removes the element at pos and returns pos.
func (d *Deque[T]) Erase(pos int) int {
	return d.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in the logical range [first, last)
// and returns first. The doomed elements are rotated to the logical
// end and destroyed by shrinking.
func (d *Deque[T]) EraseRange(first, last int) int {
	if last > d.size {
		last = d.size
	}
	count := last - first
	if count <= 0 {
		return first
	}
	algo.Rotate(algo.Sub[T](d, first, d.size), count)
	d.Resize(d.size - count)
	return first
}

// AssignN replaces the contents with n copies of val, truncated to
// capacity.
func (d *Deque[T]) AssignN(n int, val T) {
	d.Resize(n)
	algo.FillN(libstatic.Sequence[T](d), d.size, val)
}

// AssignSeq replaces the contents with src's elements, truncated to
// capacity. Assigning from any sequence, whatever the capacity of
// its owner, copies element-wise.
func (d *Deque[T]) AssignSeq(src libstatic.Sequence[T]) {
	d.Resize(src.Len())
	algo.CopyN(libstatic.Sequence[T](d), src, d.size)
}

// indexAt maps a logical position to its ring slot. The common path
// is a compare and an add; no modulo.
func (d *Deque[T]) indexAt(pos int) int {
	rollover := len(d.data) - d.head
	if pos < rollover {
		return d.head + pos
	}
	return pos - rollover
}

func (d *Deque[T]) incIndex(index int) int {
	index++
	if index < len(d.data) {
		return index
	}
	return 0
}

func (d *Deque[T]) decIndex(index int) int {
	if index > 0 {
		return index - 1
	}
	return len(d.data) - 1
}
