package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode Phase = "encode" // code points to ASCII
	PhaseDecode Phase = "decode" // ASCII to code points
	PhaseDomain Phase = "domain" // per-label domain conversion
	PhaseConfig Phase = "config" // command-line and service configuration
)

// Kind categorizes the error
type Kind string

const (
	KindOverflow       Kind = "overflow"
	KindBufferTooSmall Kind = "buffer_too_small"
	KindInvalidDigit   Kind = "invalid_digit"
	KindInvalidInput   Kind = "invalid_input"
)

// NoOffset marks an error that is not tied to an input position.
const NoOffset = -1

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset >= 0 {
		b.WriteString(" (offset ")
		b.WriteString(strconv.Itoa(e.Offset))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Is reports whether target matches this error.
// Kind must match; Phase must match only when target sets one.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind && (t.Phase == "" || e.Phase == t.Phase)
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
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Path sets the label path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the input position
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
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

// Overflow creates an overflow error for a quantity that exceeds the working integer width
func Overflow(phase Phase, offset int, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: offset,
		Detail: what + " exceeds the 32-bit working range",
	}
}

// BufferTooSmall creates an error for an exhausted output capacity
func BufferTooSmall(phase Phase, capacity, offset int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Offset: offset,
		Detail: fmt.Sprintf("output capacity %d exhausted", capacity),
		Value:  capacity,
	}
}

// InvalidDigit creates an error for a byte outside [0-9A-Za-z]
func InvalidDigit(offset int, c byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidDigit,
		Offset: offset,
		Detail: fmt.Sprintf("byte %q is not a base-36 digit", c),
		Value:  c,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: offset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context.
// The Kind is taken from cause when it is an *Error, KindInvalidInput otherwise.
func Wrap(phase Phase, cause error, detail string) *Error {
	kind := KindInvalidInput
	var e *Error
	if errors.As(cause, &e) {
		kind = e.Kind
	}
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
