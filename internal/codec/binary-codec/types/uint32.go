package types

import (
	"encoding/binary"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt32 represents a 32-bit unsigned integer. It is read from a JSON number
// or hex text and rendered as 8 uppercase hex digits.
type UInt32 struct{}

// FromJSON serializes a number or hex string into four big-endian bytes.
func (u *UInt32) FromJSON(value any) ([]byte, error) {
	n, err := toUintOrHex(value, 32)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint32(nil, uint32(n)), nil
}

// ToJSON reads four bytes and returns them as zero padded uppercase hex.
func (u *UInt32) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return formatHex(uint64(binary.BigEndian.Uint32(b)), 32), nil
}
