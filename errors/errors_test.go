package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDomain,
				Kind:   KindInvalidDigit,
				Path:   []string{"label", "xn--foo#"},
				Offset: 7,
				Detail: "bad digit",
			},
			contains: []string{"[domain]", "invalid_digit", "label.xn--foo#", "offset 7", "bad digit"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindOverflow,
				Offset: NoOffset,
			},
			contains: []string{"[decode]", "overflow"},
			excludes: []string{"offset"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindBufferTooSmall,
				Offset: 3,
				Detail: "capacity",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "buffer_too_small", "capacity", "caused by", "underlying error"},
		},
		{
			name:     "sentinel without phase",
			err:      &Error{Kind: KindInvalidInput, Offset: NoOffset},
			contains: []string{"invalid_input"},
			excludes: []string{"["},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDomain,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseEncode,
		Kind:   KindOverflow,
		Offset: 2,
	}

	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindOverflow}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOverflow}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidInput}) {
		t.Error("Is should not match different kind")
	}

	if !err.Is(&Error{Kind: KindOverflow}) {
		t.Error("Is should match a phase-less target of the same kind")
	}

	if !errors.Is(err, &Error{Kind: KindOverflow}) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidDigit).
		Path("example", "xn--tda").
		Offset(4).
		Value(byte('#')).
		Cause(cause).
		Detail("byte %q at %d", '#', 4).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidDigit {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidDigit)
	}
	if len(err.Path) != 2 || err.Path[1] != "xn--tda" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.Offset != 4 {
		t.Errorf("Offset = %d, want 4", err.Offset)
	}
	if err.Value != byte('#') {
		t.Errorf("Value = %v", err.Value)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable")
	}
	if err.Detail != "byte '#' at 4" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestBuilder_DefaultOffset(t *testing.T) {
	err := New(PhaseConfig, KindInvalidInput).Detail("no mode").Build()
	if err.Offset != NoOffset {
		t.Errorf("Offset = %d, want %d", err.Offset, NoOffset)
	}
	if err.Detail != "no mode" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		err    *Error
		name   string
		phase  Phase
		kind   Kind
		offset int
	}{
		{name: "overflow", err: Overflow(PhaseEncode, 2, "delta"), phase: PhaseEncode, kind: KindOverflow, offset: 2},
		{name: "buffer", err: BufferTooSmall(PhaseDecode, 5, 6), phase: PhaseDecode, kind: KindBufferTooSmall, offset: 6},
		{name: "digit", err: InvalidDigit(3, '#'), phase: PhaseDecode, kind: KindInvalidDigit, offset: 3},
		{name: "input", err: InvalidInput(PhaseEncode, 0, "negative"), phase: PhaseEncode, kind: KindInvalidInput, offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", tt.err.Offset, tt.offset)
			}
			if tt.err.Detail == "" {
				t.Error("Detail is empty")
			}
		})
	}

	if v := BufferTooSmall(PhaseEncode, 9, 0).Value; v != 9 {
		t.Errorf("BufferTooSmall value = %v, want 9", v)
	}
	if v := InvalidDigit(0, '!').Value; v != byte('!') {
		t.Errorf("InvalidDigit value = %v", v)
	}
}

func TestWrap(t *testing.T) {
	inner := Overflow(PhaseDecode, 7, "code point")
	err := Wrap(PhaseDomain, inner, "label 1")

	if err.Kind != KindOverflow {
		t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
	}
	if err.Offset != NoOffset {
		t.Errorf("Offset = %d, want %d", err.Offset, NoOffset)
	}
	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindOverflow}) {
		t.Error("wrapped cause should still match through the chain")
	}

	plain := Wrap(PhaseConfig, errors.New("boom"), "parse")
	if plain.Kind != KindInvalidInput {
		t.Errorf("Kind = %v, want %v", plain.Kind, KindInvalidInput)
	}
}

func TestKindOf(t *testing.T) {
	if k := KindOf(InvalidDigit(0, '#')); k != KindInvalidDigit {
		t.Errorf("KindOf = %v", k)
	}
	if k := KindOf(errors.New("plain")); k != "" {
		t.Errorf("KindOf(plain) = %v, want empty", k)
	}
	wrapped := Wrap(PhaseDomain, BufferTooSmall(PhaseEncode, 0, 0), "x")
	if k := KindOf(wrapped); k != KindBufferTooSmall {
		t.Errorf("KindOf(wrapped) = %v", k)
	}
}
