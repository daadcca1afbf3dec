// Package deque implements a fixed-capacity double-ended queue over
// a circular buffer.
//
// The container owns exactly capacity slots for its whole lifetime
// and never reallocates. Pushes at either end are O(1); positional
// insert and erase rotate the affected segment and are O(n).
// Logical order is insertion order seen from the head, independent
// of where elements physically sit in the ring.
//
// Capacity violations never fail: a push into a full deque is a
// no-op and bulk operations truncate to the available room. This is
// the saturating policy of the whole module, not an error being
// swallowed. The AtMod accessor likewise folds any index back into
// range instead of rejecting it.
package deque
