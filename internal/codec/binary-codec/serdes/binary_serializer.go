package serdes

import (
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/byteseq"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
)

// BinarySerializer accumulates fields in the order they are written. It is
// not safe for concurrent use.
type BinarySerializer struct {
	sink         *byteseq.Sequence
	fieldIDCodec *FieldIDCodec
}

// NewBinarySerializer returns an empty serializer writing headers with codec.
func NewBinarySerializer(codec *FieldIDCodec) *BinarySerializer {
	return &BinarySerializer{
		sink:         byteseq.WithCapacity(256),
		fieldIDCodec: codec,
	}
}

// Definitions returns the table field headers are resolved against.
func (s *BinarySerializer) Definitions() interfaces.Definitions {
	return s.fieldIDCodec.Definitions()
}

// WriteFieldAndValue appends the field header, a length prefix when the
// field is VL encoded, and the value.
func (s *BinarySerializer) WriteFieldAndValue(fieldInstance definitions.FieldInstance, value []byte) error {
	header, err := s.fieldIDCodec.Encode(fieldInstance.FieldName)
	if err != nil {
		return err
	}
	var prefix []byte
	if fieldInstance.IsVLEncoded {
		if prefix, err = encodeVariableLength(len(value)); err != nil {
			return err
		}
	}
	s.sink.Append(header...)
	s.sink.Append(prefix...)
	s.sink.Append(value...)
	return nil
}

// Put appends raw bytes such as end markers.
func (s *BinarySerializer) Put(b ...byte) {
	s.sink.Append(b...)
}

// GetSink returns the bytes written so far.
func (s *BinarySerializer) GetSink() []byte {
	return s.sink.Bytes()
}
