// Package codecerr classifies failures of the binary and address codecs.
//
// Every error returned by the codec packages wraps one of the Kind sentinels
// below, so callers can branch with errors.Is without depending on the
// package that produced the error.
package codecerr

import (
	"errors"
	"fmt"
)

// Kind identifies a class of codec failure.
type Kind int

const (
	// KindUnknown is reported for errors that did not originate in the codec.
	KindUnknown Kind = iota
	// KindMalformedField covers unknown field names or codes, undefined types,
	// duplicated fields and structurally invalid headers.
	KindMalformedField
	// KindBufferUnderrun is reported when a read runs past the end of the input.
	KindBufferUnderrun
	// KindShapeMismatch is reported when a JSON value has the wrong shape for
	// its declared type.
	KindShapeMismatch
	// KindAmountOutOfRange covers native drops and issued values that cannot be
	// represented on the ledger.
	KindAmountOutOfRange
	// KindInvalidCurrency covers currency codes that are neither an ISO code,
	// XRP nor 40 hex characters.
	KindInvalidCurrency
	// KindAddressEncoding covers Base58Check failures.
	KindAddressEncoding
	// KindInvalidHex is reported for hex text of odd length or with non-hex characters.
	KindInvalidHex
)

func (k Kind) String() string {
	switch k {
	case KindMalformedField:
		return "malformed field"
	case KindBufferUnderrun:
		return "buffer underrun"
	case KindShapeMismatch:
		return "shape mismatch"
	case KindAmountOutOfRange:
		return "amount out of range"
	case KindInvalidCurrency:
		return "invalid currency representation"
	case KindAddressEncoding:
		return "address encoding error"
	case KindInvalidHex:
		return "invalid hex"
	default:
		return "unknown"
	}
}

// Sentinels, one per kind.
var (
	ErrMalformedField   = &Error{Kind: KindMalformedField}
	ErrBufferUnderrun   = &Error{Kind: KindBufferUnderrun}
	ErrShapeMismatch    = &Error{Kind: KindShapeMismatch}
	ErrAmountOutOfRange = &Error{Kind: KindAmountOutOfRange}
	ErrInvalidCurrency  = &Error{Kind: KindInvalidCurrency}
	ErrAddressEncoding  = &Error{Kind: KindAddressEncoding}
	ErrInvalidHex       = &Error{Kind: KindInvalidHex}
)

// Error is a classified codec error. Any Error matches the sentinel of its
// kind under errors.Is.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// New returns an error of the given kind carrying msg.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Errorf returns an error of the given kind with a formatted message. A %w
// verb in format is honoured and exposed through Unwrap.
func Errorf(kind Kind, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Msg: err.Error(), Err: errors.Unwrap(err)}
}

// Wrap classifies err under kind. A nil err yields nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: err.Error(), Err: err}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the bare sentinel of e's kind. Sentinels
// carrying a message only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Msg != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error found in err's chain, or
// KindUnknown.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
