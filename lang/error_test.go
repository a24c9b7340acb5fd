package lang

import (
	"errors"
	"log/slog"
	"testing"
)

func TestErrorKindAndRange(t *testing.T) {
	rng := PointRange(Location{Namespace: "user", Line: 1, Column: 1, Known: true})
	err := NewErrorAt(KindTwoFloatPoints, rng)

	if err.Kind() != KindTwoFloatPoints {
		t.Errorf("Kind() = %v, want KindTwoFloatPoints", err.Kind())
	}

	if err.Range() != rng {
		t.Errorf("Range() = %+v, want %+v", err.Range(), rng)
	}
}

func TestErrorDefaultMessage(t *testing.T) {
	err := NewErrorAt(KindEOFWhileScanningAList, LocationRange{})

	if got, want := err.Error(), "<unknown>:0:0: end of file while scanning a list"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorWithMessageOverridesDefault(t *testing.T) {
	base := NewErrorAt(KindEOFWhileScanningAList, LocationRange{})
	overridden := base.WithMessage("custom message")

	if got, want := overridden.Error(), "<unknown>:0:0: custom message"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// The original is untouched — WithMessage returns a copy.
	if got, want := base.Error(), "<unknown>:0:0: end of file while scanning a list"; got != want {
		t.Errorf("base.Error() = %q, want %q (original must not mutate)", got, want)
	}
}

func TestErrorWrapAndUnwrap(t *testing.T) {
	cause := errors.New("disk error")
	err := NewErrorAt(KindNSLoadError, LocationRange{}).Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestErrorWithAttrs(t *testing.T) {
	err := NewErrorAt(KindNSLoadError, LocationRange{}).With(slog.String("namespace", "user"))

	val := err.LogValue()
	if val.Kind() != slog.KindGroup {
		t.Fatalf("LogValue().Kind() = %v, want KindGroup", val.Kind())
	}

	found := false

	for _, a := range val.Group() {
		if a.Key == "namespace" && a.Value.String() == "user" {
			found = true
		}
	}

	if !found {
		t.Error("LogValue() group missing the namespace attribute added via With()")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindNSLoadError, want: "NSLoadError"},
		{kind: KindNSAddToSMError, want: "NSAddToSMError"},
		{kind: KindInvalidDigitForNumber, want: "InvalidDigitForNumber"},
		{kind: KindTwoFloatPoints, want: "TwoFloatPoints"},
		{kind: KindInvalidCharacterForSymbol, want: "InvalidCharacterForSymbol"},
		{kind: KindEOFWhileScanningAList, want: "EOFWhileScanningAList"},
		{kind: KindFINAL, want: "FINAL"},
		{kind: Kind(99), want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
