package types

import (
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt8 represents an 8-bit unsigned integer. Its JSON form is a number.
type UInt8 struct{}

// FromJSON serializes a JSON number into one byte.
func (u *UInt8) FromJSON(value any) ([]byte, error) {
	n, err := toUint(value, 8)
	if err != nil {
		return nil, err
	}
	return []byte{byte(n)}, nil
}

// ToJSON reads one byte and returns it as an int.
func (u *UInt8) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadByte()
	if err != nil {
		return nil, err
	}
	return int(b), nil
}
