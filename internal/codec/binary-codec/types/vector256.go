package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// Vector256 is a list of 256 bit hashes.
type Vector256 struct{}

// FromJSON accepts []string or []any holding 64 character hex strings.
func (v *Vector256) FromJSON(value any) ([]byte, error) {
	var items []any
	switch val := value.(type) {
	case []string:
		items = make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
	case []any:
		items = val
	default:
		return nil, fmt.Errorf("%w: Vector256 got %T", ErrNotAnArray, value)
	}

	h := NewHash256()
	out := make([]byte, 0, len(items)*hash256Length)
	for i, item := range items {
		b, err := h.FromJSON(item)
		if err != nil {
			return nil, fmt.Errorf("Vector256[%d]: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON reads length hint / 32 hashes.
func (v *Vector256) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	n, ok := lengthHint(opts)
	if !ok {
		return nil, ErrMissingLengthHint
	}
	if n%hash256Length != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidVector256Length, n)
	}

	h := NewHash256()
	hashes := make([]string, 0, n/hash256Length)
	for i := 0; i < n/hash256Length; i++ {
		s, err := h.ToJSON(p)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, s.(string))
	}
	return hashes, nil
}
