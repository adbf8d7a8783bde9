package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	hash128Length = 16
	hash160Length = 20
	hash256Length = 32
)

// hashN is a fixed width hash rendered as uppercase hex.
type hashN struct {
	length int
}

// Hash128 is a 16 byte hash.
type Hash128 struct{ hashN }

// Hash160 is a 20 byte hash.
type Hash160 struct{ hashN }

// Hash256 is a 32 byte hash.
type Hash256 struct{ hashN }

// NewHash128 returns the Hash128 codec.
func NewHash128() *Hash128 { return &Hash128{hashN{hash128Length}} }

// NewHash160 returns the Hash160 codec.
func NewHash160() *Hash160 { return &Hash160{hashN{hash160Length}} }

// NewHash256 returns the Hash256 codec.
func NewHash256() *Hash256 { return &Hash256{hashN{hash256Length}} }

// FromJSON decodes hex text of exactly the hash width.
func (h hashN) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: hash got %T", ErrNotAString, value)
	}
	if len(s) != h.length*2 {
		return nil, fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidHashLength, h.length*2, len(s))
	}
	return byteseq.DecodeHex(s)
}

// ToJSON reads the hash width and renders it as uppercase hex.
func (h hashN) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(h.length)
	if err != nil {
		return nil, err
	}
	return byteseq.EncodeHex(b), nil
}
