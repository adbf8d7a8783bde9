package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

var (
	// ErrUndefinedType is returned when a field names a type with no codec.
	ErrUndefinedType = codecerr.New(codecerr.KindMalformedField, "undefined serialized type")
	// ErrDuplicateField is returned when an object repeats a field.
	ErrDuplicateField = codecerr.New(codecerr.KindMalformedField, "duplicate field in object")
	// ErrUnexpectedEndMarker is returned for an end marker outside its container.
	ErrUnexpectedEndMarker = codecerr.New(codecerr.KindMalformedField, "unexpected end marker")
	// ErrMissingEndMarker is returned when nested data ends before its end marker.
	ErrMissingEndMarker = codecerr.New(codecerr.KindBufferUnderrun, "data ended before end marker")
	// ErrNestingTooDeep is returned when objects and arrays nest past MaxNestingDepth.
	ErrNestingTooDeep = codecerr.New(codecerr.KindMalformedField, "objects nested too deeply")

	// ErrNotAnObject is returned when a JSON value should be an object.
	ErrNotAnObject = codecerr.New(codecerr.KindShapeMismatch, "value is not an object")
	// ErrNotAnArray is returned when a JSON value should be an array.
	ErrNotAnArray = codecerr.New(codecerr.KindShapeMismatch, "value is not an array")
	// ErrNotAString is returned when a JSON value should be a string.
	ErrNotAString = codecerr.New(codecerr.KindShapeMismatch, "value is not a string")
	// ErrNotANumber is returned when a JSON value should be an integer.
	ErrNotANumber = codecerr.New(codecerr.KindShapeMismatch, "value is not an integer")
	// ErrIntegerOutOfRange is returned when an integer does not fit its width.
	ErrIntegerOutOfRange = codecerr.New(codecerr.KindShapeMismatch, "integer does not fit field width")
	// ErrInvalidHashLength is returned when hash text has the wrong length.
	ErrInvalidHashLength = codecerr.New(codecerr.KindShapeMismatch, "invalid hash length")
	// ErrMissingLengthHint is returned when a variable length type is read
	// without a length prefix.
	ErrMissingLengthHint = codecerr.New(codecerr.KindShapeMismatch, "variable length value read without length")
	// ErrInvalidAccountIDLength is returned when an AccountID is neither empty nor 20 bytes.
	ErrInvalidAccountIDLength = codecerr.New(codecerr.KindShapeMismatch, "AccountID must be 0 or 20 bytes")
	// ErrInvalidVector256Length is returned when a Vector256 length is not a multiple of 32.
	ErrInvalidVector256Length = codecerr.New(codecerr.KindShapeMismatch, "Vector256 length must be a multiple of 32")
	// ErrInvalidPathHop is returned for a hop with no account, currency or issuer.
	ErrInvalidPathHop = codecerr.New(codecerr.KindShapeMismatch, "path hop has no account, currency or issuer")
	// ErrEmptyPath is returned for a path with no hops.
	ErrEmptyPath = codecerr.New(codecerr.KindShapeMismatch, "path has no hops")
	// ErrInvalidHopType is returned for a hop type byte with unknown bits.
	ErrInvalidHopType = codecerr.New(codecerr.KindMalformedField, "invalid path hop type")
	// ErrInvalidArrayElement is returned for an STArray element that is not a
	// single key object wrapping an STObject.
	ErrInvalidArrayElement = codecerr.New(codecerr.KindShapeMismatch, "STArray element must be a single key object")

	// ErrInvalidCurrency is returned for a currency that is not XRP, an ISO
	// code or 40 hex characters.
	ErrInvalidCurrency = codecerr.New(codecerr.KindInvalidCurrency, "currency must be XRP, a 3 character code or 40 hex characters")
	// ErrXRPIssuedCurrency is returned when an issued amount uses XRP.
	ErrXRPIssuedCurrency = codecerr.New(codecerr.KindInvalidCurrency, "issued currency must not be XRP")

	// ErrInvalidXRPValue is returned for native amount text that is not a
	// non-negative whole number of drops.
	ErrInvalidXRPValue = codecerr.New(codecerr.KindAmountOutOfRange, "invalid XRP value")
	// ErrInvalidAmountValue is returned for amount text that is not a decimal number.
	ErrInvalidAmountValue = codecerr.New(codecerr.KindShapeMismatch, "amount value is not a decimal number")
	// ErrMissingAmountField is returned when an issued amount lacks value, currency or issuer.
	ErrMissingAmountField = codecerr.New(codecerr.KindShapeMismatch, "issued amount requires value, currency and issuer")
)

// OutOfRangeError reports an issued amount whose exponent or precision
// cannot be represented. Type is "Exponent" or "Precision".
type OutOfRangeError struct {
	Type  string
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s of issued amount %q out of range", e.Type, e.Value)
}

func (e *OutOfRangeError) Unwrap() error {
	return codecerr.ErrAmountOutOfRange
}
