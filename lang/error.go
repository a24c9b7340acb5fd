package lang

import (
	"log/slog"
	"strings"
)

// Kind identifies the category of a structured [Error]. The set is closed:
// callers may switch over it exhaustively.
type Kind int

const (
	// KindNSLoadError indicates a namespace could not be resolved against the
	// load path.
	KindNSLoadError Kind = iota
	// KindNSAddToSMError indicates buffer registration in the SourceManager
	// failed.
	KindNSAddToSMError
	// KindInvalidDigitForNumber indicates a non-digit followed a numeric
	// literal's leading '-', or a symbol byte directly followed its digits
	// (as in "12abc").
	KindInvalidDigitForNumber
	// KindTwoFloatPoints indicates a number literal contains more than one
	// '.'.
	KindTwoFloatPoints
	// KindInvalidCharacterForSymbol indicates an empty or otherwise invalid
	// symbol lexeme.
	KindInvalidCharacterForSymbol
	// KindEOFWhileScanningAList indicates end-of-buffer was reached before a
	// list's closing ')'.
	KindEOFWhileScanningAList
	// KindFINAL is a reserved terminator that bounds the enumeration; the
	// reader never produces it, and [ErrNotImplemented] carries it.
	KindFINAL
)

// defaultMessage holds the human-readable default text for each Kind.
var defaultMessage = map[Kind]string{
	KindNSLoadError:               "namespace not found in load path",
	KindNSAddToSMError:            "failed to register namespace buffer",
	KindInvalidDigitForNumber:     "invalid digit for number",
	KindTwoFloatPoints:            "number literal has two decimal points",
	KindInvalidCharacterForSymbol: "invalid character for symbol",
	KindEOFWhileScanningAList:     "end of file while scanning a list",
	KindFINAL:                     "unknown error",
}

// String returns the Kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNSLoadError:
		return "NSLoadError"
	case KindNSAddToSMError:
		return "NSAddToSMError"
	case KindInvalidDigitForNumber:
		return "InvalidDigitForNumber"
	case KindTwoFloatPoints:
		return "TwoFloatPoints"
	case KindInvalidCharacterForSymbol:
		return "InvalidCharacterForSymbol"
	case KindEOFWhileScanningAList:
		return "EOFWhileScanningAList"
	case KindFINAL:
		return "FINAL"
	default:
		return "Unknown"
	}
}

// Error is a structured error carrying a closed-set [Kind], the
// [LocationRange] it occurred at, and optional structured logging
// attributes. The zero value is not useful; construct with [NewErrorAt].
//
// Error implements slog.LogValuer so a Logger can render the full error
// context (kind, location, message, cause) as a single attribute group.
type Error struct {
	kind     Kind
	rng      LocationRange
	override string // empty means use defaultMessage[kind]
	cause    error
	attrs    []slog.Attr
}

// NewErrorAt creates an Error of the given kind located at rng.
func NewErrorAt(kind Kind, rng LocationRange) *Error {
	return &Error{kind: kind, rng: rng}
}

// Kind returns the error's category.
func (e *Error) Kind() Kind { return e.kind }

// Range returns the location the error occurred at.
func (e *Error) Range() LocationRange { return e.rng }

// WithMessage returns a copy of e whose display message is overridden,
// superseding the Kind's default message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.override = msg

	return &cp
}

// Wrap returns a copy of e with cause attached as the wrapped error.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause

	return &cp
}

// With returns a copy of e with additional structured logging attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	cp := *e
	cp.attrs = append(append([]slog.Attr{}, e.attrs...), attrs...)

	return &cp
}

// message returns the effective display message: the override if set,
// otherwise the Kind's default.
func (e *Error) message() string {
	if e.override != "" {
		return e.override
	}

	return defaultMessage[e.kind]
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 3)

	part = append(part, e.rng.String()+": "+e.message())

	if e.cause != nil {
		part = append(part, e.cause.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)
	attrs = append(attrs,
		slog.String("kind", e.kind.String()),
		slog.String("location", e.rng.String()),
		slog.String("message", e.message()),
	)

	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}
