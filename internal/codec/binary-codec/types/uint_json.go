package types

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var hexDigits = regexp.MustCompile(`^[0-9a-fA-F]+$`)

// toUint converts a JSON number into an unsigned integer of the given bit
// width. Fractional or negative values are rejected.
func toUint(value any, bits int) (uint64, error) {
	limit := uint64(math.MaxUint64) >> (64 - bits)

	var n uint64
	switch v := value.(type) {
	case uint64:
		n = v
	case uint32:
		n = uint64(v)
	case uint16:
		n = uint64(v)
	case uint8:
		n = uint64(v)
	case uint:
		n = uint64(v)
	case int, int8, int16, int32, int64:
		i := toInt64(v)
		if i < 0 {
			return 0, fmt.Errorf("%w: %d is negative", ErrIntegerOutOfRange, i)
		}
		n = uint64(i)
	case float64:
		if v < 0 || v != math.Trunc(v) || v > float64(1<<53) {
			return 0, fmt.Errorf("%w: %v", ErrNotANumber, v)
		}
		n = uint64(v)
	case json.Number:
		u, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrNotANumber, v)
		}
		n = u
	default:
		return 0, fmt.Errorf("%w: got %T", ErrNotANumber, value)
	}

	if n > limit {
		return 0, fmt.Errorf("%w: %d exceeds %d bits", ErrIntegerOutOfRange, n, bits)
	}
	return n, nil
}

func toInt64(v any) int64 {
	switch i := v.(type) {
	case int:
		return int64(i)
	case int8:
		return int64(i)
	case int16:
		return int64(i)
	case int32:
		return int64(i)
	case int64:
		return i
	}
	return 0
}

// toUintOrHex accepts a JSON number or hex text of at most bits/4 digits.
func toUintOrHex(value any, bits int) (uint64, error) {
	s, ok := value.(string)
	if !ok {
		return toUint(value, bits)
	}
	if !hexDigits.MatchString(s) || len(s) > bits/4 {
		return 0, fmt.Errorf("%w: %q is not a %d bit hex value", ErrIntegerOutOfRange, s, bits)
	}
	return strconv.ParseUint(s, 16, bits)
}

// formatHex renders n as uppercase hex zero padded to bits/4 digits.
func formatHex(n uint64, bits int) string {
	return fmt.Sprintf("%0*X", bits/4, n)
}
