package deque

import (
	"testing"

	"github.com/mdk754/libstatic/algo"
)

func contents[T any](d *Deque[T]) []T {
	out := make([]T, 0, d.Len())
	for _, v := range d.All() {
		out = append(out, v)
	}
	return out
}

func expect[T comparable](t *testing.T, d *Deque[T], want []T) {
	t.Helper()
	if d.Len() != len(want) {
		t.Fatalf("len: got %d, want %d", d.Len(), len(want))
	}
	got := contents(d)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestConstruct(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		d := New[byte](3)
		if d.Len() != 0 || d.Cap() != 3 {
			t.Errorf("got len %d cap %d, want 0 and 3", d.Len(), d.Cap())
		}
		if !d.Empty() {
			t.Error("new deque should be empty")
		}
	})

	t.Run("with value, size fits", func(t *testing.T) {
		d := WithValue(3, 2, 55)
		expect(t, d, []int{55, 55})
	})

	t.Run("with value, size too large", func(t *testing.T) {
		d := WithValue(3, 4, 55)
		expect(t, d, []int{55, 55, 55})
	})

	t.Run("with zero length", func(t *testing.T) {
		d := WithLen[int](3, 2)
		expect(t, d, []int{0, 0})
	})

	t.Run("with negative length", func(t *testing.T) {
		d := WithLen[int](4, -1)
		if d.Len() != 0 {
			t.Fatalf("len: got %d, want 0", d.Len())
		}
		d.PushBack(7)
		expect(t, d, []int{7})
	})

	t.Run("from a range", func(t *testing.T) {
		d := FromSeq(3, algo.Slice([]int{0, 1, 2}))
		expect(t, d, []int{0, 1, 2})
	})

	t.Run("from a range larger than capacity", func(t *testing.T) {
		d := FromSeq(2, algo.Slice([]int{0, 1, 2, 3}))
		expect(t, d, []int{0, 1})
	})

	t.Run("clone", func(t *testing.T) {
		a := Of(8, 8, 8)
		b := a.Clone()
		expect(t, b, []int{8, 8, 8})
		if b.Cap() != a.Cap() {
			t.Errorf("cap: got %d, want %d", b.Cap(), a.Cap())
		}
		b.PopBack()
		if a.Len() != 3 {
			t.Error("clone must not share storage")
		}
	})

	t.Run("copy into smaller capacity truncates", func(t *testing.T) {
		a := Of(1, 2, 3)
		b := FromSeq[int](2, a)
		expect(t, b, []int{1, 2})
	})
}

func TestPushPop(t *testing.T) {
	t.Run("on the back", func(t *testing.T) {
		d := New[int](3)
		d.PushBack(1)
		d.PushBack(2)
		d.PushBack(3)
		d.PushBack(4) // full: ignored
		expect(t, d, []int{1, 2, 3})

		d.PopBack()
		expect(t, d, []int{1, 2})
		d.PopBack()
		d.PopBack()
		d.PopBack() // empty: ignored
		expect(t, d, []int{})
	})

	t.Run("on the front", func(t *testing.T) {
		d := New[int](3)
		d.PushFront(1)
		d.PushFront(2)
		d.PushFront(3)
		d.PushFront(4) // full: ignored
		expect(t, d, []int{3, 2, 1})

		d.PopFront()
		expect(t, d, []int{2, 1})
	})

	t.Run("mix and match at capacity eight", func(t *testing.T) {
		d := New[int](8)
		d.PushBack(1)
		d.PushFront(2)
		d.PushFront(2)
		d.PushFront(2)
		d.PushFront(4)
		d.PushBack(8)
		d.PushFront(16)
		d.PushBack(32)
		d.PushFront(64) // full: must be ignored
		expect(t, d, []int{16, 4, 2, 2, 2, 1, 8, 32})
	})

	t.Run("order survives wraparound", func(t *testing.T) {
		d := New[int](4)
		for i := 1; i <= 4; i++ {
			d.PushBack(i)
		}
		// Walk the window forward so head and tail cross the seam.
		for i := 5; i <= 12; i++ {
			d.PopFront()
			d.PushBack(i)
		}
		expect(t, d, []int{9, 10, 11, 12})
	})

	t.Run("zero capacity saturates immediately", func(t *testing.T) {
		d := New[int](0)
		d.PushBack(1)
		d.PushFront(2)
		d.PopBack()
		d.PopFront()
		expect(t, d, []int{})
	})
}

func TestAccess(t *testing.T) {
	d := New[int](3)
	d.PushBack(8)
	d.PushBack(16)
	d.PushBack(32)

	t.Run("logical indexing", func(t *testing.T) {
		for i, want := range []int{8, 16, 32} {
			if got := *d.At(i); got != want {
				t.Errorf("At(%d): got %d, want %d", i, got, want)
			}
		}
	})

	t.Run("wrapped accessor within bounds", func(t *testing.T) {
		if got := *d.AtMod(1); got != 16 {
			t.Errorf("got %d, want 16", got)
		}
	})

	t.Run("wrapped accessor folds out-of-range input", func(t *testing.T) {
		// Index 4 wraps to 1 at capacity 3; never an error, never a
		// read outside the ring.
		if got := *d.AtMod(4); got != *d.AtMod(1) {
			t.Errorf("got %d, want %d", got, *d.AtMod(1))
		}
		if got := *d.AtMod(-2); got != *d.AtMod(1) {
			t.Errorf("negative fold: got %d, want %d", got, *d.AtMod(1))
		}
	})

	t.Run("front and back", func(t *testing.T) {
		if got := *d.Front(); got != 8 {
			t.Errorf("front: got %d, want 8", got)
		}
		if got := *d.Back(); got != 32 {
			t.Errorf("back: got %d, want 32", got)
		}
	})

	t.Run("front and back when empty", func(t *testing.T) {
		e := New[int](2)
		if e.Front() != nil || e.Back() != nil {
			t.Error("empty deque must return nil element addresses")
		}
	})
}

func TestInsert(t *testing.T) {
	build := func() *Deque[int] { return FromSeq(8, algo.Slice([]int{1, 2, 3, 4})) }

	t.Run("at the front", func(t *testing.T) {
		d := build()
		d.Insert(0, 9)
		expect(t, d, []int{9, 1, 2, 3, 4})
	})

	t.Run("at the back", func(t *testing.T) {
		d := build()
		d.Insert(4, 9)
		expect(t, d, []int{1, 2, 3, 4, 9})
	})

	t.Run("in the middle", func(t *testing.T) {
		d := build()
		d.Insert(2, 9)
		expect(t, d, []int{1, 2, 9, 3, 4})
	})

	t.Run("preserves order outside the shifted segment", func(t *testing.T) {
		d := build()
		d.Insert(1, 9)
		expect(t, d, []int{1, 9, 2, 3, 4})
	})

	t.Run("many at a time", func(t *testing.T) {
		d := build()
		d.InsertN(1, 3, 7)
		expect(t, d, []int{1, 7, 7, 7, 2, 3, 4})
	})

	t.Run("count truncated to capacity", func(t *testing.T) {
		d := build()
		d.InsertN(2, 100, 7)
		expect(t, d, []int{1, 2, 7, 7, 7, 7, 3, 4})
	})

	t.Run("into a full deque is ignored", func(t *testing.T) {
		d := FromSeq(4, algo.Slice([]int{1, 2, 3, 4}))
		d.Insert(2, 9)
		expect(t, d, []int{1, 2, 3, 4})
	})

	t.Run("with a range", func(t *testing.T) {
		d := build()
		d.InsertSeq(2, algo.Slice([]int{7, 8}))
		expect(t, d, []int{1, 2, 7, 8, 3, 4})
	})

	t.Run("with a range past remaining capacity", func(t *testing.T) {
		d := build()
		d.InsertSeq(0, algo.Slice([]int{5, 6, 7, 8, 9, 10}))
		expect(t, d, []int{5, 6, 7, 8, 1, 2, 3, 4})
	})

	t.Run("after wraparound", func(t *testing.T) {
		d := New[int](6)
		for i := 1; i <= 6; i++ {
			d.PushBack(i)
		}
		d.PopFront()
		d.PopFront() // head is now deep in the ring
		d.Insert(1, 9)
		expect(t, d, []int{3, 9, 4, 5, 6})
	})
}

func TestErase(t *testing.T) {
	build := func() *Deque[int] { return FromSeq(6, algo.Slice([]int{1, 2, 3, 4, 5})) }

	t.Run("first element", func(t *testing.T) {
		d := build()
		d.Erase(0)
		expect(t, d, []int{2, 3, 4, 5})
	})

	t.Run("middle element", func(t *testing.T) {
		d := build()
		d.Erase(2)
		expect(t, d, []int{1, 2, 4, 5})
	})

	t.Run("last element", func(t *testing.T) {
		d := build()
		d.Erase(4)
		expect(t, d, []int{1, 2, 3, 4})
	})

	t.Run("a range of elements", func(t *testing.T) {
		d := build()
		d.EraseRange(1, 4)
		expect(t, d, []int{1, 5})
	})

	t.Run("whole container", func(t *testing.T) {
		d := build()
		d.EraseRange(0, d.Len())
		if d.Len() != 0 {
			t.Errorf("len: got %d, want 0", d.Len())
		}
	})

	t.Run("empty range is a no-op", func(t *testing.T) {
		d := build()
		d.EraseRange(2, 2)
		expect(t, d, []int{1, 2, 3, 4, 5})
	})
}

func TestResize(t *testing.T) {
	d := FromSeq(5, algo.Slice([]int{1, 2, 3}))

	t.Run("smaller decreases size", func(t *testing.T) {
		d.Resize(1)
		expect(t, d, []int{1})
	})

	t.Run("bigger pads with zero values", func(t *testing.T) {
		d.Resize(3)
		expect(t, d, []int{1, 0, 0})
	})

	t.Run("bigger with initialized values", func(t *testing.T) {
		d.ResizeWith(5, 7)
		expect(t, d, []int{1, 0, 0, 7, 7})
	})

	t.Run("past capacity saturates", func(t *testing.T) {
		d.Resize(100)
		if d.Len() != d.Cap() {
			t.Errorf("len: got %d, want cap %d", d.Len(), d.Cap())
		}
	})

	t.Run("to zero equals clear", func(t *testing.T) {
		d.Resize(0)
		if d.Len() != 0 || !d.Empty() {
			t.Error("resize(0) must empty the container")
		}
	})
}

func TestClear(t *testing.T) {
	d := FromSeq(4, algo.Slice([]int{1, 2, 3}))
	d.Clear()
	if d.Len() != 0 {
		t.Errorf("len: got %d, want 0", d.Len())
	}
	if d.Cap() != 4 {
		t.Errorf("cap: got %d, want 4", d.Cap())
	}
	d.PushBack(9)
	expect(t, d, []int{9})
}

func TestAssign(t *testing.T) {
	t.Run("n copies", func(t *testing.T) {
		d := FromSeq(4, algo.Slice([]int{1, 2}))
		d.AssignN(3, 6)
		expect(t, d, []int{6, 6, 6})
	})

	t.Run("n copies beyond capacity truncates", func(t *testing.T) {
		d := New[int](3)
		d.AssignN(9, 6)
		expect(t, d, []int{6, 6, 6})
	})

	t.Run("from a sequence", func(t *testing.T) {
		d := WithValue(4, 4, 1)
		d.AssignSeq(algo.Slice([]int{5, 6}))
		expect(t, d, []int{5, 6})
	})

	t.Run("from a longer sequence keeps the first cap elements", func(t *testing.T) {
		d := New[int](3)
		d.AssignSeq(algo.Slice([]int{1, 2, 3, 4, 5}))
		expect(t, d, []int{1, 2, 3})
	})

	t.Run("between deques of different capacities", func(t *testing.T) {
		a := FromSeq(3, algo.Slice([]int{8, 8, 8}))
		b := New[int](5)
		b.AssignSeq(a)
		expect(t, b, []int{8, 8, 8})
	})
}

func TestConvert(t *testing.T) {
	src := Of[uint8](3, 8, 8)
	dst := New[uint32](2)
	Convert(dst, src, func(v uint8) uint32 { return uint32(v) })
	expect(t, dst, []uint32{3, 8})
}

func TestComparison(t *testing.T) {
	t.Run("equality", func(t *testing.T) {
		a := Of(1, 2, 3)
		if !Equal(a, Of(1, 2, 3)) {
			t.Error("same contents should be equal")
		}
		if Equal(a, Of(1, 2, 4)) {
			t.Error("differing contents should not be equal")
		}
		if Equal(a, Of(1, 2)) {
			t.Error("differing sizes should not be equal")
		}
	})

	t.Run("capacity does not participate", func(t *testing.T) {
		a := FromSeq(8, algo.Slice([]int{1, 2}))
		b := FromSeq(2, algo.Slice([]int{1, 2}))
		if !Equal(a, b) {
			t.Error("equal sequences in different capacities should be equal")
		}
	})

	t.Run("lexicographic order", func(t *testing.T) {
		tests := []struct {
			name string
			a, b *Deque[int]
			want int
		}{
			{"lower value", Of(1, 2, 2), Of(1, 2, 3), -1},
			{"higher value", Of(1, 2, 4), Of(1, 2, 3), 1},
			{"equal", Of(1, 2, 3), Of(1, 2, 3), 0},
			{"prefix sorts first", Of(1, 2), Of(1, 2, 3), -1},
			{"longer sorts last", Of(1, 2, 3), Of(1, 2), 1},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if got := Compare(tc.a, tc.b); got != tc.want {
					t.Errorf("got %d, want %d", got, tc.want)
				}
			})
		}
	})
}

type noisy struct {
	id        int
	destroyed bool
}

func (n *noisy) Destroy() { n.destroyed = true }

func TestDestroyHooksRunOnShrink(t *testing.T) {
	d := New[noisy](4)
	for i := 0; i < 4; i++ {
		d.PushBack(noisy{id: i})
	}

	back := d.Back()
	d.PopBack()
	if !back.destroyed {
		t.Error("pop back must destroy the vacated element")
	}

	front := d.Front()
	d.PopFront()
	if !front.destroyed {
		t.Error("pop front must destroy the vacated element")
	}

	d.Clear()
	if d.Len() != 0 {
		t.Errorf("len: got %d, want 0", d.Len())
	}
}

func BenchmarkPushPopRing(b *testing.B) {
	d := New[int](1024)
	for i := 0; i < 1024; i++ {
		d.PushBack(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.PopFront()
		d.PushBack(i)
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	b.ReportAllocs()
	d := New[int](256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Clear()
		for j := 0; j < 128; j++ {
			d.PushBack(j)
		}
		d.Insert(64, -1)
	}
}
