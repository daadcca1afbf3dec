// Package variant implements a bounded tagged union over up to eight
// alternative types.
//
// A Variant holds exactly one value drawn from its alternative list at
// any time, discriminated by a small index. The zero Variant holds the
// zero value of the first alternative, so declaring one is always safe:
//
//	var v variant.V2[int, string]
//	v.Index()        // 0
//	v.Get0()         // 0, true
//
//	v.Set1("hello")
//	v.Index()        // 1
//
// Assigning a value of the alternative already held writes through the
// existing storage; assigning a different alternative first runs the
// outgoing value's destroy hook, then installs the new one.
//
// The V1 through V8 aliases pad the unused trailing slots with
// unconstructible placeholder types, so a V2 exposes only two usable
// alternatives.
//
// Untyped access goes through the Value interface: Holds, As, Get and
// Visit operate on any variant instantiation without knowing its
// alternative list.
package variant
