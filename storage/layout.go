package storage

import "unsafe"

// Layout describes the size and alignment of a slot.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of T as the platform lays it out.
func Of[T any]() Layout {
	var probe T
	return Layout{
		Size:  unsafe.Sizeof(probe),
		Align: unsafe.Alignof(probe),
	}
}

// Max folds a list of layouts into the layout of a single slot large
// and aligned enough to hold any one of them. The size is padded to
// the resulting alignment. Folding an empty list yields the
// zero-size, byte-aligned layout.
func Max(layouts ...Layout) Layout {
	out := Layout{Size: 0, Align: 1}
	for _, l := range layouts {
		if l.Size > out.Size {
			out.Size = l.Size
		}
		if l.Align > out.Align {
			out.Align = l.Align
		}
	}
	return out.Padded()
}

// Padded returns the layout with its size rounded up to a multiple
// of its alignment, so consecutive slots stay aligned.
func (l Layout) Padded() Layout {
	return Layout{Size: AlignTo(l.Size, l.Align), Align: l.Align}
}

// ArraySize returns the number of bytes n consecutive padded slots
// occupy.
func (l Layout) ArraySize(n int) uintptr {
	if n <= 0 {
		return 0
	}
	return l.Padded().Size * uintptr(n)
}
