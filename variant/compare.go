package variant

import (
	"cmp"
	"reflect"
)

// Equal reports whether two variants hold the same alternative and
// equal values. It panics when the held values are of a type that
// does not support ==.
func Equal(a, b Value) bool {
	if a.Index() != b.Index() {
		return false
	}
	return held(a) == held(b)
}

// Compare orders two variants: first by discriminant, then by held
// value, so every value of a lower alternative sorts before every
// value of a higher one. Held values must be of an integer, float,
// string or bool kind; use CompareFunc otherwise.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.Index(), b.Index()); c != 0 {
		return c
	}
	return compareHeld(reflect.ValueOf(held(a)), reflect.ValueOf(held(b)))
}

// CompareFunc orders two variants by discriminant first, then by fn
// over the held values.
func CompareFunc(a, b Value, fn func(x, y any) int) int {
	if c := cmp.Compare(a.Index(), b.Index()); c != 0 {
		return c
	}
	return fn(held(a), held(b))
}

func compareHeld(x, y reflect.Value) int {
	switch x.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(x.Int(), y.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(x.Uint(), y.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(x.Float(), y.Float())
	case reflect.String:
		return cmp.Compare(x.String(), y.String())
	case reflect.Bool:
		if x.Bool() == y.Bool() {
			return 0
		}
		if !x.Bool() {
			return -1
		}
		return 1
	case reflect.Struct:
		if x.NumField() == 0 {
			// Unit alternatives have a single value.
			return 0
		}
	}
	panic("variant: held type is not ordered, use CompareFunc")
}
