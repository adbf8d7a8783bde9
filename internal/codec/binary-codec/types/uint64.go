//revive:disable:var-naming
package types

import (
	"encoding/binary"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// UInt64 represents a 64-bit unsigned integer.
type UInt64 struct{}

// FromJSON converts a JSON value into a serialized byte slice representing a 64-bit unsigned integer.
// Strings are read as hex of up to 16 digits (like "a" for 10); numbers are taken as is.
func (u *UInt64) FromJSON(value any) ([]byte, error) {
	n, err := toUintOrHex(value, 64)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint64(nil, n), nil
}

// ToJSON takes a BinaryParser and converts the next 8 bytes back into a JSON string value.
// The output is uppercase hex padded to 16 digits.
func (u *UInt64) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	return formatHex(binary.BigEndian.Uint64(b), 64), nil
}
