package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// Blob is variable length binary data rendered as hex.
type Blob struct{}

// FromJSON decodes hex text of any even length.
func (b *Blob) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: Blob got %T", ErrNotAString, value)
	}
	return byteseq.DecodeHex(s)
}

// ToJSON reads as many bytes as the length prefix announced.
func (b *Blob) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	n, ok := lengthHint(opts)
	if !ok {
		return nil, ErrMissingLengthHint
	}
	val, err := p.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return byteseq.EncodeHex(val), nil
}
