// Package vector implements a bounded contiguous sequence with a
// fixed capacity chosen at construction.
//
// A vector never grows and never reallocates: pushing into a full
// vector is silently ignored, and sizing operations clamp to the
// capacity. Elements live in one contiguous block, exposed through
// Data for interop with slice-based code.
//
// Removal runs each vacated element's destroy hook; see the place
// package for the hook contract.
package vector
