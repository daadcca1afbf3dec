// Package libstatic provides bounded, allocation-free container
// primitives for constrained environments: a fixed-capacity
// circular-buffer deque, an eight-slot tagged union, and the
// placement and alignment machinery they are built on.
//
// Every container owns exactly the storage it is constructed with.
// Nothing here grows, reallocates, or reports capacity errors:
// operations that would exceed capacity saturate silently, which is
// the intended policy for the embedded-class targets this library
// models. After construction the hot paths perform no allocation.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	libstatic/           Root package with the Sequence and Destroyer contracts
//	├── storage/         Aligned raw byte buffers, type layout queries, typed views
//	├── place/           Construct/destroy-in-place primitives and range forms
//	├── algo/            Rotate, reverse, fill, copy, equal, compare over sequences
//	├── deque/           Fixed-capacity double-ended queue over a ring buffer
//	├── variant/         Closed tagged union of up to eight alternatives
//	├── vector/          Fixed-capacity contiguous sequence
//	├── optional/        Single-slot maybe-value
//	└── errors/          Structured error types for construction-time failures
//
// # Quick Start
//
// A deque of capacity 8:
//
//	d := deque.New[int](8)
//	d.PushBack(1)
//	d.PushFront(2)
//	d.PopBack()
//
// A variant over two alternatives:
//
//	var v variant.V2[int, string]
//	v.Set1("hello")
//	if s, ok := v.Get1(); ok {
//	    fmt.Println(s)
//	}
//
// # Failure Model
//
// Container operations have no error channel. Pushing into a full
// container is a no-op, bulk operations truncate to the available
// capacity, and the wrapped accessor folds any index back into
// range. Construction-time validation (storage alignment, typed
// views) is the only place errors are reported, through the errors
// package.
//
// # Thread Safety
//
// Nothing in this module synchronizes. Concurrent access to the same
// container instance must be coordinated by the caller.
package libstatic
