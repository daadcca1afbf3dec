package storage

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/mdk754/libstatic/errors"
)

// MaxAlign is the strictest alignment the platform offers for a
// scalar type. Requests for stricter alignment are rejected rather
// than silently under-aligned.
const MaxAlign = int(unsafe.Alignof(maxAligned{}))

type maxAligned struct {
	_ complex128
	_ uint64
}

// AlignTo rounds offset up to the next multiple of align. Align must
// be a power of two; align zero returns offset unchanged.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// IsAligned reports whether addr is a multiple of align.
func IsAligned(addr, align uintptr) bool {
	if align == 0 {
		return true
	}
	return addr&(align-1) == 0
}

// MaxAlign may equal 8, so it cannot share a case list with the
// fixed scalar alignments.
func supportedAlign(align int) bool {
	if align == MaxAlign {
		return true
	}
	switch align {
	case 1, 2, 4, 8:
		return true
	}
	return false
}

// Alloc returns a byte buffer of exactly size bytes whose first byte
// satisfies align. The buffer is over-allocated and re-sliced so the
// guarantee holds regardless of where the runtime places it.
//
// Only the scalar alignments 1, 2, 4, 8 and MaxAlign are supported;
// any other request, and any zero-size or size < align request, is a
// structured error.
func Alloc(size, align int) ([]byte, error) {
	if !supportedAlign(align) {
		return nil, errors.BadAlignment(errors.PhaseAlloc, align)
	}
	if size <= 0 {
		return nil, errors.ZeroSize(errors.PhaseAlloc)
	}
	if size < align {
		return nil, errors.New(errors.PhaseAlloc, errors.KindZeroSize).
			Detail("size %d is smaller than alignment %d", size, align).
			Build()
	}

	buf := make([]byte, size+align-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := AlignTo(addr, uintptr(align)) - addr
	out := buf[off : off+uintptr(size) : off+uintptr(size)]

	Logger().Debug("allocated aligned storage",
		zap.Int("size", size),
		zap.Int("align", align),
		zap.Uintptr("offset", off),
	)
	return out, nil
}
