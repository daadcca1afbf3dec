package vector

import (
	"testing"

	"github.com/mdk754/libstatic/algo"
)

func expect[T comparable](t *testing.T, v *Vector[T], want []T) {
	t.Helper()
	if v.Len() != len(want) {
		t.Fatalf("len: got %d, want %d", v.Len(), len(want))
	}
	for i := range want {
		if got := *v.At(i); got != want[i] {
			t.Fatalf("got %v, want %v", v.Data(), want)
		}
	}
}

func TestConstruct(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		v := New[int](4)
		if v.Len() != 0 || v.Cap() != 4 || !v.Empty() {
			t.Errorf("got len %d cap %d, want 0 and 4", v.Len(), v.Cap())
		}
	})

	t.Run("with value, truncated", func(t *testing.T) {
		v := WithValue(3, 5, 9)
		expect(t, v, []int{9, 9, 9})
	})

	t.Run("from a range", func(t *testing.T) {
		v := FromSeq(4, algo.Slice([]int{1, 2, 3}))
		expect(t, v, []int{1, 2, 3})
	})

	t.Run("clone is independent", func(t *testing.T) {
		a := Of(1, 2)
		b := a.Clone()
		b.PushBack(3) // at capacity: ignored
		b.PopBack()
		expect(t, a, []int{1, 2})
		expect(t, b, []int{1})
	})
}

func TestPushPop(t *testing.T) {
	v := New[int](2)
	v.PushBack(1)
	v.PushBack(2)
	v.PushBack(3) // full: ignored
	expect(t, v, []int{1, 2})

	v.PopBack()
	expect(t, v, []int{1})
	v.PopBack()
	v.PopBack() // empty: ignored
	expect(t, v, []int{})
}

func TestDataView(t *testing.T) {
	v := Of(1, 2, 3)
	s := v.Data()
	if len(s) != 3 {
		t.Fatalf("len: got %d, want 3", len(s))
	}
	s[1] = 9
	if got := *v.At(1); got != 9 {
		t.Error("data view must share storage")
	}
	v.PopBack()
	if got := len(v.Data()); got != 2 {
		t.Errorf("after pop: got %d, want 2", got)
	}
}

func TestInsertErase(t *testing.T) {
	t.Run("insert in the middle", func(t *testing.T) {
		v := FromSeq(6, algo.Slice([]int{1, 2, 3, 4}))
		v.Insert(2, 9)
		expect(t, v, []int{1, 2, 9, 3, 4})
	})

	t.Run("insert many, truncated", func(t *testing.T) {
		v := FromSeq(5, algo.Slice([]int{1, 2, 3}))
		v.InsertN(1, 10, 7)
		expect(t, v, []int{1, 7, 7, 2, 3})
	})

	t.Run("insert a range", func(t *testing.T) {
		v := FromSeq(6, algo.Slice([]int{1, 4}))
		v.InsertSeq(1, algo.Slice([]int{2, 3}))
		expect(t, v, []int{1, 2, 3, 4})
	})

	t.Run("erase one", func(t *testing.T) {
		v := Of(1, 2, 3)
		v.Erase(1)
		expect(t, v, []int{1, 3})
	})

	t.Run("erase a range", func(t *testing.T) {
		v := Of(1, 2, 3, 4, 5)
		v.EraseRange(1, 4)
		expect(t, v, []int{1, 5})
	})
}

func TestResizeAssign(t *testing.T) {
	v := FromSeq(4, algo.Slice([]int{1, 2, 3}))

	v.Resize(1)
	expect(t, v, []int{1})

	v.ResizeWith(3, 8)
	expect(t, v, []int{1, 8, 8})

	v.Resize(100)
	if v.Len() != v.Cap() {
		t.Errorf("len: got %d, want cap %d", v.Len(), v.Cap())
	}

	v.AssignN(2, 5)
	expect(t, v, []int{5, 5})

	v.AssignSeq(algo.Slice([]int{1, 2, 3, 4, 5}))
	expect(t, v, []int{1, 2, 3, 4})

	v.Clear()
	if !v.Empty() || v.Cap() != 4 {
		t.Error("clear must empty without touching capacity")
	}
}

func TestIterate(t *testing.T) {
	v := Of(1, 2, 3)

	var fwd []int
	for _, x := range v.All() {
		fwd = append(fwd, x)
	}
	var bwd []int
	for _, x := range v.Backward() {
		bwd = append(bwd, x)
	}
	for i := range fwd {
		if fwd[i] != bwd[len(bwd)-1-i] {
			t.Fatalf("forward %v and backward %v disagree", fwd, bwd)
		}
	}
}

func TestComparison(t *testing.T) {
	if !Equal(Of(1, 2), Of(1, 2)) {
		t.Error("same contents should be equal")
	}
	if Equal(Of(1, 2), Of(1, 3)) {
		t.Error("differing contents should not be equal")
	}
	if got := Compare(Of(1, 2), Of(1, 2, 3)); got != -1 {
		t.Errorf("prefix order: got %d, want -1", got)
	}
	if got := Compare(Of(2), Of(1, 9)); got != 1 {
		t.Errorf("value order: got %d, want 1", got)
	}
}

func TestConvert(t *testing.T) {
	dst := New[string](2)
	Convert(dst, Of(7, 8, 9), func(n int) string { return string(rune('0' + n)) })
	expect(t, dst, []string{"7", "8"})
}

type guarded struct {
	hits *int
}

func (g *guarded) Destroy() { *g.hits++ }

func TestDestroyHooksOnShrink(t *testing.T) {
	var hits int
	v := New[guarded](3)
	for i := 0; i < 3; i++ {
		v.PushBack(guarded{hits: &hits})
	}
	v.PopBack()
	if hits != 1 {
		t.Errorf("after pop: got %d hook runs, want 1", hits)
	}
	v.Clear()
	if hits != 3 {
		t.Errorf("after clear: got %d hook runs, want 3", hits)
	}
}
