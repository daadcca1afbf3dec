package storage

import (
	"reflect"
	"unsafe"

	"github.com/mdk754/libstatic/errors"
)

// View reinterprets an aligned raw buffer as a slice of T covering
// the whole buffer.
//
// The buffer must start on an address satisfying T's alignment and
// must be a whole number of elements long. T must not contain
// pointers: the collector does not trace raw bytes, so a pointer
// parked there would not keep its referent alive.
func View[T any](buf []byte) ([]T, error) {
	typ := reflect.TypeFor[T]()
	if containsPointers(typ) {
		return nil, errors.PointerType(errors.PhaseView, typ.String())
	}

	layout := Of[T]()
	if layout.Size == 0 {
		return nil, errors.ZeroSize(errors.PhaseView)
	}
	if len(buf) == 0 {
		return []T{}, nil
	}
	if uintptr(len(buf))%layout.Size != 0 {
		return nil, errors.SizeMismatch(errors.PhaseView, typ.String(), len(buf), int(layout.Size))
	}

	addr := uintptr(unsafe.Pointer(&buf[0]))
	if !IsAligned(addr, layout.Align) {
		return nil, errors.Unaligned(errors.PhaseView, typ.String(), int(layout.Align))
	}

	n := uintptr(len(buf)) / layout.Size
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), n), nil
}

func containsPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && containsPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if containsPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
