// Package storage provides alignment-correct raw byte buffers and
// compile-time-style layout queries for the containers built on top
// of them.
//
// Alloc returns a buffer whose first byte satisfies a requested
// scalar alignment (1, 2, 4, 8, or MaxAlign); anything stricter is
// rejected before any storage exists, since the platform cannot
// honor it natively. AlignTo and IsAligned are the raw arithmetic.
//
// Layout captures the size and alignment of a type the way the
// containers need it: Of answers for a single type, Max folds a list
// of alternatives into the layout of a slot that can hold any of
// them.
//
// View reinterprets an aligned raw buffer as a typed slice. It
// refuses types the garbage collector must trace, because pointers
// stored in untyped bytes are invisible to the collector.
package storage
