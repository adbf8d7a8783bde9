package serdes

import "github.com/LeJamon/xrplcodec/internal/codec/codecerr"

const (
	maxSingleByteLength = 192
	maxDoubleByteLength = 12480
	maxTripleByteLength = 918744
)

// ErrLengthPrefixTooLong is returned when a variable length value exceeds
// the largest length a three byte prefix can express.
var ErrLengthPrefixTooLong = codecerr.New(codecerr.KindShapeMismatch, "length of value must not exceed 918744 bytes of data")

// ErrInvalidLengthPrefix is returned when a length prefix starts with 0xFF.
var ErrInvalidLengthPrefix = codecerr.New(codecerr.KindMalformedField, "invalid variable length prefix")

// encodeVariableLength returns the 1 to 3 byte prefix for a value of the
// given length.
//
//	0..192        b0 = length
//	193..12480    b0 = 193 + (length-193)>>8, b1 = (length-193)&0xFF
//	12481..918744 b0 = 241 + (length-12481)>>16, then two more bytes
func encodeVariableLength(length int) ([]byte, error) {
	switch {
	case length < 0:
		return nil, codecerr.Errorf(codecerr.KindShapeMismatch, "negative length %d", length)
	case length <= maxSingleByteLength:
		return []byte{byte(length)}, nil
	case length <= maxDoubleByteLength:
		length -= maxSingleByteLength + 1
		return []byte{byte(193 + (length >> 8)), byte(length & 0xFF)}, nil
	case length <= maxTripleByteLength:
		length -= maxDoubleByteLength + 1
		return []byte{
			byte(241 + (length >> 16)),
			byte((length >> 8) & 0xFF),
			byte(length & 0xFF),
		}, nil
	default:
		return nil, ErrLengthPrefixTooLong
	}
}
