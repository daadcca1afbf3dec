// Package place brings typed values into existence in container
// slots and tears them down again, without allocating.
//
// Go has no constructors or destructors, so lifetime is a
// bookkeeping discipline: a slot is live exactly when its owning
// container says so. Constructing is writing a value into a dead
// slot; destroying runs the element's Destroy hook when the type
// implements libstatic.Destroyer, and otherwise zeroes the slot so
// any references it held are released. Whatever Destroy writes stays
// in the slot bytes, which is how teardown side effects (sentinels,
// counters) remain observable.
//
// The range forms apply the single-slot primitive across a sequence
// or a count, and are correct no-ops for empty ranges.
package place
