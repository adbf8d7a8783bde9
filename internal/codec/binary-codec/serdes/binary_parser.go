package serdes

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

const (
	// ObjectEndMarker terminates a nested STObject.
	ObjectEndMarker byte = 0xE1
	// ArrayEndMarker terminates an STArray.
	ArrayEndMarker byte = 0xF1
)

var (
	// ErrParserOutOfBound is returned when a read runs past the end of the data.
	ErrParserOutOfBound = codecerr.New(codecerr.KindBufferUnderrun, "parser out of bounds")
	// ErrNonCanonicalFieldHeader is returned when a header uses a longer form
	// than its codes require.
	ErrNonCanonicalFieldHeader = codecerr.New(codecerr.KindMalformedField, "non-canonical field header")
)

// BinaryParser is a read cursor over serialized data. It is not safe for
// concurrent use.
type BinaryParser struct {
	data        []byte
	pos         int
	definitions interfaces.Definitions
}

// NewBinaryParser returns a parser positioned at the start of data.
func NewBinaryParser(data []byte, defs interfaces.Definitions) *BinaryParser {
	return &BinaryParser{data: data, definitions: defs}
}

// Definitions returns the table fields are resolved against.
func (p *BinaryParser) Definitions() interfaces.Definitions {
	return p.definitions
}

// HasMore reports whether unread bytes remain.
func (p *BinaryParser) HasMore() bool {
	return p.pos < len(p.data)
}

// Remaining returns the number of unread bytes.
func (p *BinaryParser) Remaining() int {
	return len(p.data) - p.pos
}

// Peek returns the next byte without consuming it.
func (p *BinaryParser) Peek() (byte, error) {
	if !p.HasMore() {
		return 0, ErrParserOutOfBound
	}
	return p.data[p.pos], nil
}

// ReadByte consumes one byte.
func (p *BinaryParser) ReadByte() (byte, error) {
	if !p.HasMore() {
		return 0, ErrParserOutOfBound
	}
	b := p.data[p.pos]
	p.pos++
	return b, nil
}

// ReadBytes consumes n bytes and returns a copy of them.
func (p *BinaryParser) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > p.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrParserOutOfBound, n, p.Remaining())
	}
	out := make([]byte, n)
	copy(out, p.data[p.pos:p.pos+n])
	p.pos += n
	return out, nil
}

// ReadVariableLength decodes a 1 to 3 byte length prefix.
func (p *BinaryParser) ReadVariableLength() (int, error) {
	b0, err := p.ReadByte()
	if err != nil {
		return 0, err
	}
	switch {
	case b0 <= maxSingleByteLength:
		return int(b0), nil
	case b0 <= 240:
		b1, err := p.ReadByte()
		if err != nil {
			return 0, err
		}
		return 193 + int(b0-193)*256 + int(b1), nil
	case b0 <= 254:
		rest, err := p.ReadBytes(2)
		if err != nil {
			return 0, err
		}
		return 12481 + int(b0-241)*65536 + int(rest[0])*256 + int(rest[1]), nil
	default:
		return 0, ErrInvalidLengthPrefix
	}
}

// ReadFieldHeader decodes a 1 to 3 byte field header.
func (p *BinaryParser) ReadFieldHeader() (definitions.FieldHeader, error) {
	var fh definitions.FieldHeader

	b, err := p.ReadByte()
	if err != nil {
		return fh, err
	}
	typeCode := int32(b >> 4)
	fieldCode := int32(b & 0x0F)

	if typeCode == 0 {
		t, err := p.ReadByte()
		if err != nil {
			return fh, err
		}
		if t < 16 {
			return fh, fmt.Errorf("%w: type code %d in extended form", ErrNonCanonicalFieldHeader, t)
		}
		typeCode = int32(t)
	}
	if fieldCode == 0 {
		f, err := p.ReadByte()
		if err != nil {
			return fh, err
		}
		if f < 16 {
			return fh, fmt.Errorf("%w: field code %d in extended form", ErrNonCanonicalFieldHeader, f)
		}
		fieldCode = int32(f)
	}

	return p.definitions.CreateFieldHeader(typeCode, fieldCode), nil
}

// ReadField decodes a field header and resolves it. It returns nil and no
// error when the header is an object or array end marker.
func (p *BinaryParser) ReadField() (*definitions.FieldInstance, error) {
	fh, err := p.ReadFieldHeader()
	if err != nil {
		return nil, err
	}
	if isEndMarker(fh) {
		return nil, nil
	}
	name, err := p.definitions.GetFieldNameByFieldHeader(fh)
	if err != nil {
		return nil, err
	}
	return p.definitions.GetFieldInstanceByFieldName(name)
}

func isEndMarker(fh definitions.FieldHeader) bool {
	return fh.FieldCode == 1 && (fh.TypeCode == int32(ObjectEndMarker>>4) || fh.TypeCode == int32(ArrayEndMarker>>4))
}
