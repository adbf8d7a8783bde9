package types

import (
	"fmt"
	"regexp"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	currencyLength = 20
	isoCodeOffset  = 12
	isoCodeLength  = 3
	nativeCurrency = "XRP"
)

var isoCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3}$`)

// Currency is a 20 byte currency code.
type Currency struct{}

// FromJSON accepts "XRP", three uppercase letters or digits, or 40 hex
// characters.
func (c *Currency) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: Currency got %T", ErrNotAString, value)
	}
	return encodeCurrency(s)
}

// ToJSON reads 20 bytes and renders them as described on decodeCurrency.
func (c *Currency) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(currencyLength)
	if err != nil {
		return nil, err
	}
	return decodeCurrency(b), nil
}

func encodeCurrency(s string) ([]byte, error) {
	if s == nativeCurrency {
		return make([]byte, currencyLength), nil
	}
	if isoCodeRegex.MatchString(s) {
		b := make([]byte, currencyLength)
		copy(b[isoCodeOffset:], s)
		return b, nil
	}
	if len(s) != currencyLength*2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	b, err := byteseq.DecodeHex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCurrency, s, err)
	}
	return b, nil
}

// decodeCurrency renders all zero bytes as "XRP", the standard layout with
// an uppercase alphanumeric code other than XRP as that code, and anything
// else as hex.
func decodeCurrency(b []byte) string {
	if byteseq.IsZero(b) {
		return nativeCurrency
	}
	if code, ok := isoCode(b); ok && code != nativeCurrency {
		return code
	}
	return byteseq.EncodeHex(b)
}

// isoCode returns the code of a standard currency: zeros except bytes 12
// to 14, which hold three uppercase letters or digits.
func isoCode(b []byte) (string, bool) {
	if !byteseq.IsZero(b[:isoCodeOffset]) || !byteseq.IsZero(b[isoCodeOffset+isoCodeLength:]) {
		return "", false
	}
	code := string(b[isoCodeOffset : isoCodeOffset+isoCodeLength])
	return code, isoCodeRegex.MatchString(code)
}
