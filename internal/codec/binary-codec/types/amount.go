package types

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	addresscodec "github.com/LeJamon/xrplcodec/internal/codec/address-codec"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	// MinIOUExponent is the smallest exponent of a normalized issued value.
	MinIOUExponent = -96
	// MaxIOUExponent is the largest exponent of a normalized issued value.
	MaxIOUExponent = 80
	// MaxIOUPrecision is the number of significant digits an issued value keeps.
	MaxIOUPrecision = 16
	// MinIOUMantissa is the smallest normalized mantissa.
	MinIOUMantissa = 1000000000000000
	// MaxIOUMantissa is the largest normalized mantissa.
	MaxIOUMantissa = 9999999999999999

	// NotXRPBitMask is set in the first byte of every issued amount.
	NotXRPBitMask = 0x80
	// PosSignBitMask is set in the first byte of a positive amount.
	PosSignBitMask = 0x40

	// NativeAmountByteLength is the wire size of an XRP amount.
	NativeAmountByteLength = 8
	// CurrencyAmountByteLength is the wire size of an issued amount.
	CurrencyAmountByteLength = 48

	maxDrops       = 100000000000000000
	maxDropsDigits = 18
	exponentBias   = 97
	mantissaMask   = 1<<54 - 1
	dropsMask      = 1<<62 - 1
	scientificLow  = -25
	scientificHigh = -5

	// maxTextExponent bounds the exponent written in decimal text before
	// any arithmetic on it.
	maxTextExponent = 10000
)

var decimalRegex = regexp.MustCompile(`^([-+]?)([0-9]*)(?:\.([0-9]*))?(?:[eE]([-+]?[0-9]+))?$`)

// Amount is either a native drop count or an issued value with its
// currency and issuer.
type Amount struct{}

// FromJSON accepts a drops string or an object with value, currency and
// issuer.
func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return encodeNativeAmount(v)
	case map[string]any:
		return encodeIssuedAmount(v)
	}
	return nil, fmt.Errorf("%w: Amount got %T", ErrNotAnObject, value)
}

// ToJSON reads 8 bytes, plus 40 more when the amount is issued.
func (a *Amount) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	raw, err := p.ReadBytes(NativeAmountByteLength)
	if err != nil {
		return nil, err
	}
	head := byteseq.New(raw)
	if isNative(head) {
		return decodeNativeAmount(head), nil
	}

	rest, err := p.ReadBytes(CurrencyAmountByteLength - NativeAmountByteLength)
	if err != nil {
		return nil, err
	}
	issuer, err := addresscodec.EncodeAccountIDToClassicAddress(rest[currencyLength:])
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"value":    decodeIssuedValue(head),
		"currency": decodeCurrency(rest[:currencyLength]),
		"issuer":   issuer,
	}, nil
}

func isNative(head *byteseq.Sequence) bool {
	return !head.HasBits(0, NotXRPBitMask)
}

func isPositive(head *byteseq.Sequence) bool {
	return head.HasBits(0, PosSignBitMask)
}

// decimal is a parsed decimal number: digits × 10^exponent, with digits
// free of leading and trailing zeros. Zero has no digits.
type decimal struct {
	negative bool
	digits   string
	exponent int
}

func parseDecimal(s string) (decimal, error) {
	m := decimalRegex.FindStringSubmatch(s)
	if m == nil || m[2]+m[3] == "" {
		return decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmountValue, s)
	}

	d := decimal{negative: m[1] == "-"}
	if m[4] != "" {
		e, err := strconv.Atoi(m[4])
		if err != nil || e > maxTextExponent || e < -maxTextExponent {
			return decimal{}, &OutOfRangeError{Type: "Exponent", Value: s}
		}
		d.exponent = e
	}
	d.exponent -= len(m[3])

	digits := strings.TrimLeft(m[2]+m[3], "0")
	trimmed := strings.TrimRight(digits, "0")
	d.exponent += len(digits) - len(trimmed)
	d.digits = trimmed
	return d, nil
}

func (d decimal) isZero() bool {
	return d.digits == ""
}

// verifyXrpValue checks that s is a whole number of drops in [0, 1e17].
func verifyXrpValue(s string) error {
	_, err := parseDrops(s)
	return err
}

func parseDrops(s string) (uint64, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidXRPValue, s)
	}
	if d.isZero() {
		return 0, nil
	}
	if d.negative {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidXRPValue, s)
	}
	if d.exponent < 0 {
		return 0, fmt.Errorf("%w: %q has fractional drops", ErrInvalidXRPValue, s)
	}
	if d.exponent > maxDropsDigits-len(d.digits) {
		return 0, fmt.Errorf("%w: %q exceeds %d drops", ErrInvalidXRPValue, s, maxDrops)
	}
	n, err := strconv.ParseUint(d.digits+strings.Repeat("0", d.exponent), 10, 64)
	if err != nil || n > maxDrops {
		return 0, fmt.Errorf("%w: %q exceeds %d drops", ErrInvalidXRPValue, s, maxDrops)
	}
	return n, nil
}

func encodeNativeAmount(s string) ([]byte, error) {
	drops, err := parseDrops(s)
	if err != nil {
		return nil, err
	}
	head := byteseq.New(binary.BigEndian.AppendUint64(nil, drops))
	head.Or(0, PosSignBitMask)
	return head.Bytes(), nil
}

func decodeNativeAmount(head *byteseq.Sequence) string {
	v := binary.BigEndian.Uint64(head.Bytes())
	drops := strconv.FormatUint(v&dropsMask, 10)
	if !isPositive(head) && drops != "0" {
		return "-" + drops
	}
	return drops
}

// normalizeIOU returns the mantissa and exponent of d with the mantissa in
// [MinIOUMantissa, MaxIOUMantissa].
func normalizeIOU(d decimal, text string) (uint64, int, error) {
	if len(d.digits) > MaxIOUPrecision {
		return 0, 0, &OutOfRangeError{Type: "Precision", Value: text}
	}
	mantissa, err := strconv.ParseUint(d.digits, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAmountValue, text)
	}
	exp := d.exponent
	for mantissa < MinIOUMantissa {
		mantissa *= 10
		exp--
	}
	if exp < MinIOUExponent || exp > MaxIOUExponent {
		return 0, 0, &OutOfRangeError{Type: "Exponent", Value: text}
	}
	return mantissa, exp, nil
}

// verifyIOUValue checks that s is representable as an issued value.
func verifyIOUValue(s string) error {
	d, err := parseDecimal(s)
	if err != nil {
		return err
	}
	if d.isZero() {
		return nil
	}
	_, _, err = normalizeIOU(d, s)
	return err
}

func encodeIssuedValue(s string) ([]byte, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	head := byteseq.New(make([]byte, NativeAmountByteLength))
	if !d.isZero() {
		mantissa, exp, err := normalizeIOU(d, s)
		if err != nil {
			return nil, err
		}
		head = byteseq.New(binary.BigEndian.AppendUint64(nil, uint64(exp+exponentBias)<<54|mantissa))
		if !d.negative {
			head.Or(0, PosSignBitMask)
		}
	}
	head.Or(0, NotXRPBitMask)
	return head.Bytes(), nil
}

// decodeIssuedValue renders an issued value header the way the ledger
// server does: plain decimal for exponents in [-25, -5] and for exponent
// 0, scientific notation otherwise.
func decodeIssuedValue(head *byteseq.Sequence) string {
	v := binary.BigEndian.Uint64(head.Bytes())
	mantissa := v & mantissaMask
	if mantissa == 0 {
		return "0"
	}
	exp := int(v>>54&0xFF) - exponentBias
	sign := ""
	if !isPositive(head) {
		sign = "-"
	}

	digits := strconv.FormatUint(mantissa, 10)
	if exp != 0 && (exp < scientificLow || exp > scientificHigh) {
		trimmed := strings.TrimRight(digits, "0")
		exp += len(digits) - len(trimmed)
		return fmt.Sprintf("%s%se%d", sign, trimmed, exp)
	}

	point := len(digits) + exp
	var text string
	switch {
	case exp >= 0:
		text = digits + strings.Repeat("0", exp)
	case point <= 0:
		text = "0." + strings.Repeat("0", -point) + digits
	default:
		text = digits[:point] + "." + digits[point:]
	}
	if strings.Contains(text, ".") {
		text = strings.TrimRight(strings.TrimRight(text, "0"), ".")
	}
	return sign + text
}

// serializeIssuedCurrencyCode encodes the currency of an issued amount,
// which must not be XRP in either text or hex form.
func serializeIssuedCurrencyCode(s string) ([]byte, error) {
	if s == nativeCurrency {
		return nil, ErrXRPIssuedCurrency
	}
	b, err := encodeCurrency(s)
	if err != nil {
		return nil, err
	}
	if code, ok := isoCode(b); byteseq.IsZero(b) || (ok && code == nativeCurrency) {
		return nil, fmt.Errorf("%w: %q", ErrXRPIssuedCurrency, s)
	}
	return b, nil
}

func encodeIssuedAmount(m map[string]any) ([]byte, error) {
	fields := make([]string, 0, 3)
	for _, key := range []string{"value", "currency", "issuer"} {
		s, ok := m[key].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q missing or not a string", ErrMissingAmountField, key)
		}
		fields = append(fields, s)
	}

	value, err := encodeIssuedValue(fields[0])
	if err != nil {
		return nil, err
	}
	currency, err := serializeIssuedCurrencyCode(fields[1])
	if err != nil {
		return nil, err
	}
	issuer, err := encodeAccountID(fields[2])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, CurrencyAmountByteLength)
	out = append(out, value...)
	out = append(out, currency...)
	return append(out, issuer...), nil
}
