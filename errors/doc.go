// Package errors provides structured error types for the punycode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the input offset at which the conversion stopped, the
// offending value, the domain label being processed and a cause chain.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidDigit).
//		Offset(3).
//		Value(byte('#')).
//		Detail("byte %q is not a base-36 digit", '#').
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseEncode, 0, "delta")
//	err := errors.BufferTooSmall(errors.PhaseDecode, 5, 6)
//
// All errors implement the standard error interface and support errors.Is/As.
// A target with an empty Phase matches errors of its Kind from any phase.
package errors
