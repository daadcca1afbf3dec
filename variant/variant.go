package variant

import (
	"github.com/mdk754/libstatic/place"
)

// Monostate is a unit alternative for variants that need an explicit
// "empty" state as their first slot.
type Monostate struct{}

// Variant is a discriminated union over eight alternative types. It
// stores the value of exactly one alternative, tracked by a tag index.
//
// The zero Variant holds the zero value of T0. Use the V1 through V8
// aliases rather than naming Variant directly; they pad unused slots
// with placeholder types that cannot be constructed.
type Variant[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	// val boxes a pointer to the held alternative (*T0 through *T7,
	// selected by tag). A nil box stands for the zero value of T0.
	val any
	tag uint8
}

// Index reports which alternative the variant currently holds.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Index() int { return int(v.tag) }

// box returns the stored alternative pointer, materializing the lazy
// zero-value box for a freshly zeroed variant.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) box() any {
	if v.val == nil {
		var zero T0
		v.val = &zero
	}
	return v.val
}

// destroy runs the outgoing alternative's teardown before the slot is
// repurposed. Dispatch is by tag; the box type follows the tag by
// construction. A zero variant holds a live zero T0 even when its box
// was never materialized, so that value is torn down like any other.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) destroy() {
	switch v.tag {
	case 0:
		if p, ok := v.val.(*T0); ok {
			place.DestroyAt(p)
		} else {
			var zero T0
			place.DestroyAt(&zero)
		}
	case 1:
		if p, ok := v.val.(*T1); ok {
			place.DestroyAt(p)
		}
	case 2:
		if p, ok := v.val.(*T2); ok {
			place.DestroyAt(p)
		}
	case 3:
		if p, ok := v.val.(*T3); ok {
			place.DestroyAt(p)
		}
	case 4:
		if p, ok := v.val.(*T4); ok {
			place.DestroyAt(p)
		}
	case 5:
		if p, ok := v.val.(*T5); ok {
			place.DestroyAt(p)
		}
	case 6:
		if p, ok := v.val.(*T6); ok {
			place.DestroyAt(p)
		}
	case 7:
		if p, ok := v.val.(*T7); ok {
			place.DestroyAt(p)
		}
	}
}

// Destroy tears down the held value and returns the variant to its
// zero state, holding a zero T0.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Destroy() {
	v.destroy()
	v.val = nil
	v.tag = 0
}

// Set0 makes the variant hold x as alternative 0. If alternative 0 is
// already held the existing storage is reused, so pointers previously
// obtained from Ptr0 observe the new value.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set0(x T0) {
	if v.tag == 0 {
		if p, ok := v.val.(*T0); ok {
			*p = x
			return
		}
		v.val = &x
		return
	}
	v.destroy()
	v.val = &x
	v.tag = 0
}

// Set1 makes the variant hold x as alternative 1.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set1(x T1) {
	if v.tag == 1 {
		if p, ok := v.val.(*T1); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 1
}

// Set2 makes the variant hold x as alternative 2.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set2(x T2) {
	if v.tag == 2 {
		if p, ok := v.val.(*T2); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 2
}

// Set3 makes the variant hold x as alternative 3.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set3(x T3) {
	if v.tag == 3 {
		if p, ok := v.val.(*T3); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 3
}

// Set4 makes the variant hold x as alternative 4.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set4(x T4) {
	if v.tag == 4 {
		if p, ok := v.val.(*T4); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 4
}

// Set5 makes the variant hold x as alternative 5.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set5(x T5) {
	if v.tag == 5 {
		if p, ok := v.val.(*T5); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 5
}

// Set6 makes the variant hold x as alternative 6.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set6(x T6) {
	if v.tag == 6 {
		if p, ok := v.val.(*T6); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 6
}

// Set7 makes the variant hold x as alternative 7.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Set7(x T7) {
	if v.tag == 7 {
		if p, ok := v.val.(*T7); ok {
			*p = x
			return
		}
	}
	v.destroy()
	v.val = &x
	v.tag = 7
}

// CopyFrom assigns the alternative and value held by src, dispatching
// on the source discriminant.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) CopyFrom(src *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) {
	if v == src {
		return
	}
	switch src.tag {
	case 0:
		x, _ := src.Get0()
		v.Set0(x)
	case 1:
		x, _ := src.Get1()
		v.Set1(x)
	case 2:
		x, _ := src.Get2()
		v.Set2(x)
	case 3:
		x, _ := src.Get3()
		v.Set3(x)
	case 4:
		x, _ := src.Get4()
		v.Set4(x)
	case 5:
		x, _ := src.Get5()
		v.Set5(x)
	case 6:
		x, _ := src.Get6()
		v.Set6(x)
	case 7:
		x, _ := src.Get7()
		v.Set7(x)
	}
}

// Clone returns an independent variant holding a copy of the current
// alternative and value.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Clone() Variant[T0, T1, T2, T3, T4, T5, T6, T7] {
	var out Variant[T0, T1, T2, T3, T4, T5, T6, T7]
	out.CopyFrom(v)
	return out
}
