package algo

import (
	"testing"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		in     []int
		middle int
		want   []int
		ret    int
	}{
		{"middle of range", []int{1, 2, 3, 4, 5}, 2, []int{3, 4, 5, 1, 2}, 3},
		{"rotate by one", []int{1, 2, 3, 4}, 1, []int{2, 3, 4, 1}, 3},
		{"middle at begin is a no-op", []int{1, 2, 3}, 0, []int{1, 2, 3}, 0},
		{"middle at end is a no-op", []int{1, 2, 3}, 3, []int{1, 2, 3}, 3},
		{"single element", []int{9}, 0, []int{9}, 0},
		{"empty", []int{}, 0, []int{}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(Slice(tc.in), tc.middle)
			if got != tc.ret {
				t.Errorf("return: got %d, want %d", got, tc.ret)
			}
			for i, want := range tc.want {
				if tc.in[i] != want {
					t.Errorf("position %d: got %d, want %d", i, tc.in[i], want)
				}
			}
		})
	}
}

func TestRotateReversedIsRightRotation(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	Rotate(Reversed(Slice(s)), 2)

	want := []int{4, 5, 1, 2, 3}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("got %v, want %v", s, want)
		}
	}
}

func TestReverse(t *testing.T) {
	t.Run("even length", func(t *testing.T) {
		s := []int{1, 2, 3, 4}
		Reverse(Slice(s))
		want := []int{4, 3, 2, 1}
		for i := range want {
			if s[i] != want[i] {
				t.Fatalf("got %v, want %v", s, want)
			}
		}
	})

	t.Run("odd length", func(t *testing.T) {
		s := []int{1, 2, 3}
		Reverse(Slice(s))
		if s[0] != 3 || s[1] != 2 || s[2] != 1 {
			t.Fatalf("got %v, want [3 2 1]", s)
		}
	})

	t.Run("sub range only", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}
		Reverse(Sub(Slice(s), 1, 4))
		want := []int{1, 4, 3, 2, 5}
		for i := range want {
			if s[i] != want[i] {
				t.Fatalf("got %v, want %v", s, want)
			}
		}
	})
}

func TestReversedAdapter(t *testing.T) {
	s := Slice([]int{1, 2, 3})
	r := Reversed(s)

	if *r.At(0) != 3 || *r.At(2) != 1 {
		t.Error("reversed view should walk back to front")
	}
	if rr := Reversed(r); *rr.At(0) != 1 {
		t.Error("reversing a reversed view should unwrap to the original")
	}
}

func TestFill(t *testing.T) {
	s := []int{1, 2, 3}
	Fill(Slice(s), 7)
	for i, v := range s {
		if v != 7 {
			t.Errorf("position %d: got %d, want 7", i, v)
		}
	}

	FillN(Slice(s), 2, 9)
	if s[0] != 9 || s[1] != 9 || s[2] != 7 {
		t.Errorf("got %v, want [9 9 7]", s)
	}

	FillN(Slice(s), 0, 1) // no-op
	if s[0] != 9 {
		t.Error("zero-count fill must not write")
	}
}

func TestCopy(t *testing.T) {
	t.Run("dst shorter", func(t *testing.T) {
		src := []int{1, 2, 3, 4}
		dst := []int{0, 0}
		if n := Copy(Slice(dst), Slice(src)); n != 2 {
			t.Errorf("copied: got %d, want 2", n)
		}
		if dst[0] != 1 || dst[1] != 2 {
			t.Errorf("got %v, want [1 2]", dst)
		}
	})

	t.Run("src shorter", func(t *testing.T) {
		src := []int{5}
		dst := []int{0, 0, 0}
		if n := Copy(Slice(dst), Slice(src)); n != 1 {
			t.Errorf("copied: got %d, want 1", n)
		}
		if dst[0] != 5 || dst[1] != 0 {
			t.Errorf("got %v, want [5 0 0]", dst)
		}
	})
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want bool
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different contents", []int{1, 2, 3}, []int{1, 2, 4}, false},
		{"different lengths", []int{1, 2}, []int{1, 2, 3}, false},
		{"both empty", []int{}, []int{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(Slice(tc.a), Slice(tc.b)); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"equal", []int{1, 2}, []int{1, 2}, 0},
		{"lower element sorts first", []int{1, 2}, []int{1, 3}, -1},
		{"higher element sorts last", []int{2}, []int{1, 9}, 1},
		{"prefix sorts first", []int{1, 2}, []int{1, 2, 3}, -1},
		{"longer sorts last", []int{1, 2, 3}, []int{1, 2}, 1},
		{"empty sorts first", []int{}, []int{0}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(Slice(tc.a), Slice(tc.b)); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}
