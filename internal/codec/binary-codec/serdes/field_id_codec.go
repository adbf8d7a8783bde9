package serdes

import (
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

// FieldIDCodec converts between field names and their wire headers.
type FieldIDCodec struct {
	definitions interfaces.Definitions
}

// NewFieldIDCodec returns a codec resolving names against defs.
func NewFieldIDCodec(defs interfaces.Definitions) *FieldIDCodec {
	return &FieldIDCodec{definitions: defs}
}

// Definitions returns the table the codec resolves against.
func (f *FieldIDCodec) Definitions() interfaces.Definitions {
	return f.definitions
}

// Encode returns the header bytes of the named field.
func (f *FieldIDCodec) Encode(fieldName string) ([]byte, error) {
	fh, err := f.definitions.GetFieldHeaderByFieldName(fieldName)
	if err != nil {
		return nil, err
	}
	return encodeFieldHeader(*fh), nil
}

// Decode returns the name of the field whose header is the hex text h.
func (f *FieldIDCodec) Decode(h string) (string, error) {
	b, err := byteseq.DecodeHex(h)
	if err != nil {
		return "", err
	}
	p := NewBinaryParser(b, f.definitions)
	fh, err := p.ReadFieldHeader()
	if err != nil {
		return "", err
	}
	if p.HasMore() {
		return "", codecerr.Errorf(codecerr.KindMalformedField, "trailing bytes after field header %s", h)
	}
	return f.definitions.GetFieldNameByFieldHeader(fh)
}

// encodeFieldHeader packs the codes into the shortest of the four header
// forms.
func encodeFieldHeader(fh definitions.FieldHeader) []byte {
	t, n := byte(fh.TypeCode), byte(fh.FieldCode)
	switch {
	case fh.TypeCode < 16 && fh.FieldCode < 16:
		return []byte{t<<4 | n}
	case fh.TypeCode < 16:
		return []byte{t << 4, n}
	case fh.FieldCode < 16:
		return []byte{n, t}
	default:
		return []byte{0, t, n}
	}
}
