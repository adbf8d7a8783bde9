// Package types implements the codec of every serialized type: fixed width
// integers and hashes, AccountID, Currency, Amount, Blob, PathSet, STObject,
// STArray and Vector256.
//
//revive:disable:var-naming
package types

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes"
	serdesinterfaces "github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

// SerializedType converts one type between its JSON form and its wire form.
// ToJSON receives the VL length as its first option when the field is VL
// encoded.
type SerializedType interface {
	FromJSON(json any) ([]byte, error)
	ToJSON(parser interfaces.BinaryParser, opts ...int) (any, error)
}

// GetSerializedType returns the codec for a type name, or nil when the type
// has none. Containers get a fresh serializer over defs.
func GetSerializedType(typeName string, defs serdesinterfaces.Definitions) SerializedType {
	switch typeName {
	case "UInt8":
		return &UInt8{}
	case "UInt16":
		return &UInt16{}
	case "UInt32":
		return &UInt32{}
	case "UInt64":
		return &UInt64{}
	case "Hash128":
		return NewHash128()
	case "Hash160":
		return NewHash160()
	case "Hash256":
		return NewHash256()
	case "AccountID":
		return &AccountID{}
	case "Currency":
		return &Currency{}
	case "Amount":
		return &Amount{}
	case "Blob":
		return &Blob{}
	case "PathSet":
		return &PathSet{}
	case "Vector256":
		return &Vector256{}
	case stObjectType:
		return newNestedSTObject(newSerializer(defs), 1)
	case stArrayType:
		return NewSTArray(newSerializer(defs))
	}
	return nil
}

func newSerializer(defs serdesinterfaces.Definitions) *serdes.BinarySerializer {
	return serdes.NewBinarySerializer(serdes.NewFieldIDCodec(defs))
}

// ReadFieldValue decodes the value of field from p. VL encoded fields have
// their length prefix read first and passed on to the codec.
func ReadFieldValue(p interfaces.BinaryParser, field *definitions.FieldInstance) (any, error) {
	st := GetSerializedType(field.Type, p.Definitions())
	if st == nil {
		return nil, fmt.Errorf("%w: %s (field %s)", ErrUndefinedType, field.Type, field.FieldName)
	}
	if !field.IsVLEncoded {
		return st.ToJSON(p)
	}
	length, err := p.ReadVariableLength()
	if err != nil {
		return nil, err
	}
	return st.ToJSON(p, length)
}

// lengthHint returns the first option, if any.
func lengthHint(opts []int) (int, bool) {
	if len(opts) == 0 {
		return 0, false
	}
	return opts[0], true
}
