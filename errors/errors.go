package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlloc    Phase = "alloc"    // raw storage allocation
	PhaseView     Phase = "view"     // typed reinterpretation of raw storage
	PhaseLayout   Phase = "layout"   // size/alignment computation
	PhaseScenario Phase = "scenario" // inspector scenario parsing and replay
)

// Kind categorizes the error
type Kind string

const (
	KindBadAlignment Kind = "bad_alignment"
	KindZeroSize     Kind = "zero_size"
	KindSizeMismatch Kind = "size_mismatch"
	KindPointerType  Kind = "pointer_type"
	KindUnaligned    Kind = "unaligned"
	KindInvalidOp    Kind = "invalid_op"
	KindInvalidData  Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the element type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// BadAlignment creates an unsupported alignment error
func BadAlignment(phase Phase, align int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadAlignment,
		Detail: fmt.Sprintf("alignment %d is not a supported scalar alignment", align),
		Value:  align,
	}
}

// ZeroSize creates a zero-size storage request error
func ZeroSize(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindZeroSize,
		Detail: "storage request must be at least one byte",
	}
}

// SizeMismatch creates an error for a buffer that is not a whole
// number of elements
func SizeMismatch(phase Phase, typeName string, bufLen, elemSize int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindSizeMismatch,
		Type:   typeName,
		Detail: fmt.Sprintf("buffer of %d bytes is not a multiple of element size %d", bufLen, elemSize),
		Value:  bufLen,
	}
}

// PointerType creates an error for a typed view over a type the
// garbage collector must trace
func PointerType(phase Phase, typeName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindPointerType,
		Type:   typeName,
		Detail: "type contains pointers and cannot live in raw bytes",
	}
}

// Unaligned creates an error for storage that does not satisfy the
// required alignment
func Unaligned(phase Phase, typeName string, align int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnaligned,
		Type:   typeName,
		Detail: fmt.Sprintf("buffer address does not satisfy alignment %d", align),
		Value:  align,
	}
}

// InvalidOp creates an unknown scenario operation error
func InvalidOp(name string) *Error {
	return &Error{
		Phase:  PhaseScenario,
		Kind:   KindInvalidOp,
		Detail: fmt.Sprintf("unknown operation %q", name),
		Value:  name,
	}
}
