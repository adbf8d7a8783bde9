package definitions

import (
	"fmt"

	"github.com/LeJamon/xrplcodec/internal/codec/codecerr"
)

// FieldHeader identifies a field on the wire by its type code and field code.
type FieldHeader struct {
	TypeCode  int32
	FieldCode int32
}

// FieldInstance describes one entry of the field table.
type FieldInstance struct {
	FieldName      string
	Type           string
	Nth            int32
	IsVLEncoded    bool
	IsSerialized   bool
	IsSigningField bool
	FieldHeader    FieldHeader
	// Ordinal is TypeCode<<16 | FieldCode, the canonical sort key.
	Ordinal int32
}

func newFieldInstance(name string, info fieldInfo, typeCode int32) *FieldInstance {
	return &FieldInstance{
		FieldName:      name,
		Type:           info.Type,
		Nth:            info.Nth,
		IsVLEncoded:    info.IsVLEncoded,
		IsSerialized:   info.IsSerialized,
		IsSigningField: info.IsSigningField,
		FieldHeader:    FieldHeader{TypeCode: typeCode, FieldCode: info.Nth},
		Ordinal:        typeCode<<16 | info.Nth,
	}
}

// CompareFields orders fields by (type code, field code). It returns a
// negative number when a sorts before b, zero when equal and a positive
// number otherwise.
func CompareFields(a, b *FieldInstance) int {
	if a.FieldHeader.TypeCode != b.FieldHeader.TypeCode {
		return int(a.FieldHeader.TypeCode - b.FieldHeader.TypeCode)
	}
	return int(a.FieldHeader.FieldCode - b.FieldHeader.FieldCode)
}

// NotFoundError is returned when a lookup misses. It classifies as a
// malformed field.
type NotFoundError struct {
	Table string
	Key   any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Table, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return codecerr.ErrMalformedField
}
