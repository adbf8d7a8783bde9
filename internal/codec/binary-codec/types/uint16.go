package types

import (
	"encoding/binary"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt16 represents a 16-bit unsigned integer. Its JSON form is a number.
type UInt16 struct{}

// FromJSON serializes a JSON number into two big-endian bytes.
func (u *UInt16) FromJSON(value any) ([]byte, error) {
	n, err := toUint(value, 16)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint16(nil, uint16(n)), nil
}

// ToJSON reads two bytes and returns them as an int.
func (u *UInt16) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(2)
	if err != nil {
		return nil, err
	}
	return int(binary.BigEndian.Uint16(b)), nil
}
