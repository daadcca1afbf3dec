package variant

import (
	"reflect"

	"github.com/mdk754/libstatic/storage"
)

// Layout returns the size and alignment a raw union of the eight
// alternatives would occupy: the widest alternative rounded up to the
// strictest alignment. The discriminant is not included.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Layout() storage.Layout {
	return storage.Max(
		storage.Of[T0](), storage.Of[T1](), storage.Of[T2](), storage.Of[T3](),
		storage.Of[T4](), storage.Of[T5](), storage.Of[T6](), storage.Of[T7](),
	)
}

// placeholderTypes identifies the padding alternatives behind the V1
// through V7 aliases.
var placeholderTypes = map[reflect.Type]struct{}{
	reflect.TypeFor[nul1](): {},
	reflect.TypeFor[nul2](): {},
	reflect.TypeFor[nul3](): {},
	reflect.TypeFor[nul4](): {},
	reflect.TypeFor[nul5](): {},
	reflect.TypeFor[nul6](): {},
	reflect.TypeFor[nul7](): {},
}

// Size returns the number of usable alternatives, excluding the
// trailing placeholder padding.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Size() int {
	for i := 0; i < 8; i++ {
		if _, ok := placeholderTypes[v.TypeAt(i)]; ok {
			return i
		}
	}
	return 8
}

// TypeAt returns the type of alternative i, or nil when i is out of
// range.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) TypeAt(i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeFor[T0]()
	case 1:
		return reflect.TypeFor[T1]()
	case 2:
		return reflect.TypeFor[T2]()
	case 3:
		return reflect.TypeFor[T3]()
	case 4:
		return reflect.TypeFor[T4]()
	case 5:
		return reflect.TypeFor[T5]()
	case 6:
		return reflect.TypeFor[T6]()
	case 7:
		return reflect.TypeFor[T7]()
	}
	return nil
}

// Type returns the type of the alternative currently held.
func (v *Variant[T0, T1, T2, T3, T4, T5, T6, T7]) Type() reflect.Type {
	return v.TypeAt(v.Index())
}
