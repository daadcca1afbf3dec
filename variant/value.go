package variant

import "reflect"

// Value is the untyped view of a variant. Every *Variant
// instantiation implements it, which lets Holds, As, Get and Visit
// work without naming the alternative list.
type Value interface {
	// Index reports the discriminant of the held alternative.
	Index() int

	box() any
}

// Holds reports whether v currently holds an alternative of type T.
func Holds[T any](v Value) bool {
	_, ok := v.box().(*T)
	return ok
}

// As returns the held value when v holds an alternative of type T.
func As[T any](v Value) (T, bool) {
	p, ok := v.box().(*T)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Get returns the held value of type T without checking the
// discriminant: it dereferences Ptr's result, so a mismatch is a nil
// dereference. Use As when the alternative is not known.
func Get[T any](v Value) T {
	return *Ptr[T](v)
}

// Ptr returns the address of the held value when v holds an
// alternative of type T, nil otherwise.
func Ptr[T any](v Value) *T {
	p, _ := v.box().(*T)
	return p
}

// Visit calls fn with the held value, whatever its alternative, and
// returns fn's result.
func Visit[R any](v Value, fn func(held any) R) R {
	return fn(held(v))
}

// Each calls fn with the held value for its side effects.
func Each(v Value, fn func(held any)) {
	fn(held(v))
}

func held(v Value) any {
	return reflect.ValueOf(v.box()).Elem().Interface()
}
