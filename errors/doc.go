// Package errors provides structured error types for the libstatic
// library.
//
// Container operations in this module never fail; the only errors the
// library reports come from construction-time validation: requesting
// raw storage with an unsupported alignment, reinterpreting a buffer
// as a type the garbage collector cannot trace through, or parsing an
// inspector scenario file. Errors are categorized by Phase (where the
// failure occurred) and Kind (what went wrong).
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAlloc, errors.KindBadAlignment).
//		Type("uint64").
//		Detail("alignment %d is not a supported scalar alignment", 16).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadAlignment(errors.PhaseAlloc, 3)
//	err := errors.ZeroSize(errors.PhaseAlloc)
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
