// Package byteseq provides the owned byte sequence used as the serializer
// sink and for amount headers, and the hex conversions at the codec
// boundary.
package byteseq

import (
	"encoding/hex"
	"strings"

	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

// Sequence is a growable, owned byte sequence. The zero value is empty and
// ready to use.
type Sequence struct {
	buf []byte
}

// New returns a sequence holding a copy of b.
func New(b []byte) *Sequence {
	s := &Sequence{buf: make([]byte, len(b))}
	copy(s.buf, b)
	return s
}

// WithCapacity returns an empty sequence with room for n bytes.
func WithCapacity(n int) *Sequence {
	return &Sequence{buf: make([]byte, 0, n)}
}

// DecodeHex decodes hex text of either case into a fresh slice. Odd-length
// text or non-hex characters fail with a codecerr.KindInvalidHex error.
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, codecerr.Errorf(codecerr.KindInvalidHex, "odd length hex string %q", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, codecerr.Wrap(codecerr.KindInvalidHex, err)
	}
	return b, nil
}

// EncodeHex renders b as uppercase hex.
func EncodeHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Append adds b to the end of the sequence.
func (s *Sequence) Append(b ...byte) {
	s.buf = append(s.buf, b...)
}

// Bytes returns the underlying bytes. The caller must not retain the slice
// across further appends.
func (s *Sequence) Bytes() []byte {
	return s.buf
}

// Or sets the bits of mask in the byte at index i.
func (s *Sequence) Or(i int, mask byte) {
	s.buf[i] |= mask
}

// HasBits reports whether every bit of mask is set in the byte at index i.
func (s *Sequence) HasBits(i int, mask byte) bool {
	return s.buf[i]&mask == mask
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
