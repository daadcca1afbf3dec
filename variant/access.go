package variant

// Get0 returns the held value when alternative 0 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get0() (T0, bool) {
	if v.tag != 0 {
		var zero T0
		return zero, false
	}
	return *v.box().(*T0), true
}

// Get1 returns the held value when alternative 1 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get1() (T1, bool) {
	if p, ok := v.val.(*T1); ok && v.tag == 1 {
		return *p, true
	}
	var zero T1
	return zero, false
}

// Get2 returns the held value when alternative 2 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get2() (T2, bool) {
	if p, ok := v.val.(*T2); ok && v.tag == 2 {
		return *p, true
	}
	var zero T2
	return zero, false
}

// Get3 returns the held value when alternative 3 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get3() (T3, bool) {
	if p, ok := v.val.(*T3); ok && v.tag == 3 {
		return *p, true
	}
	var zero T3
	return zero, false
}

// Get4 returns the held value when alternative 4 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get4() (T4, bool) {
	if p, ok := v.val.(*T4); ok && v.tag == 4 {
		return *p, true
	}
	var zero T4
	return zero, false
}

// Get5 returns the held value when alternative 5 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get5() (T5, bool) {
	if p, ok := v.val.(*T5); ok && v.tag == 5 {
		return *p, true
	}
	var zero T5
	return zero, false
}

// Get6 returns the held value when alternative 6 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get6() (T6, bool) {
	if p, ok := v.val.(*T6); ok && v.tag == 6 {
		return *p, true
	}
	var zero T6
	return zero, false
}

// Get7 returns the held value when alternative 7 is active.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Get7() (T7, bool) {
	if p, ok := v.val.(*T7); ok && v.tag == 7 {
		return *p, true
	}
	var zero T7
	return zero, false
}

// Ptr0 returns the address of the held value when alternative 0 is
// active, nil otherwise. The address stays valid until a different
// alternative is assigned.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr0() *T0 {
	if v.tag != 0 {
		return nil
	}
	return v.box().(*T0)
}

// Ptr1 returns the address of the held value when alternative 1 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr1() *T1 {
	if p, ok := v.val.(*T1); ok && v.tag == 1 {
		return p
	}
	return nil
}

// Ptr2 returns the address of the held value when alternative 2 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr2() *T2 {
	if p, ok := v.val.(*T2); ok && v.tag == 2 {
		return p
	}
	return nil
}

// Ptr3 returns the address of the held value when alternative 3 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr3() *T3 {
	if p, ok := v.val.(*T3); ok && v.tag == 3 {
		return p
	}
	return nil
}

// Ptr4 returns the address of the held value when alternative 4 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr4() *T4 {
	if p, ok := v.val.(*T4); ok && v.tag == 4 {
		return p
	}
	return nil
}

// Ptr5 returns the address of the held value when alternative 5 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr5() *T5 {
	if p, ok := v.val.(*T5); ok && v.tag == 5 {
		return p
	}
	return nil
}

// Ptr6 returns the address of the held value when alternative 6 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr6() *T6 {
	if p, ok := v.val.(*T6); ok && v.tag == 6 {
		return p
	}
	return nil
}

// Ptr7 returns the address of the held value when alternative 7 is
// active, nil otherwise.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Ptr7() *T7 {
	if p, ok := v.val.(*T7); ok && v.tag == 7 {
		return p
	}
	return nil
}
