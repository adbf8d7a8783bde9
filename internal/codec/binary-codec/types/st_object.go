package types

import (
	"fmt"
	"sort"

	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes"
	serdesinterfaces "github.com/LeJamon/xrplcodec/internal/codec/binary-codec/serdes/interfaces"
	"github.com/LeJamon/xrplcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	transactionTypeField   = "TransactionType"
	ledgerEntryTypeField   = "LedgerEntryType"
	transactionResultField = "TransactionResult"
	accountField           = "Account"
	unlModifyType          = "UNLModify"
	stObjectType           = "STObject"
	stArrayType            = "STArray"

	// MaxNestingDepth is the deepest nesting of objects and arrays a
	// decoder accepts. The top level object is at depth 0.
	MaxNestingDepth = 10
)

// STObject is a set of fields written in canonical order. A top level
// object runs to the end of its input; a nested one ends with 0xE1, which
// the enclosing object writes.
type STObject struct {
	serializer interfaces.BinarySerializer
	nested     bool
	depth      int
}

// NewSTObject returns the codec of a top level object. Fields are written
// into serializer, which also supplies the definitions.
func NewSTObject(serializer interfaces.BinarySerializer) *STObject {
	return &STObject{serializer: serializer}
}

func newNestedSTObject(serializer interfaces.BinarySerializer, depth int) *STObject {
	return &STObject{serializer: serializer, nested: true, depth: depth}
}

type fieldWithValue struct {
	field *definitions.FieldInstance
	value any
}

// FromJSON encodes every serialized field of a JSON object. Keys that name
// no field, or a field that is not serialized, are skipped. The Account of
// a UNLModify transaction is omitted.
func (o *STObject) FromJSON(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: STObject got %T", ErrNotAnObject, value)
	}
	defs := o.serializer.Definitions()

	skipAccount := isUNLModify(defs, m[transactionTypeField])
	fields := make([]fieldWithValue, 0, len(m))
	for name, v := range m {
		fi, err := defs.GetFieldInstanceByFieldName(name)
		if err != nil || !fi.IsSerialized {
			continue
		}
		if name == accountField && skipAccount {
			continue
		}
		fields = append(fields, fieldWithValue{field: fi, value: v})
	}
	sort.Slice(fields, func(i, j int) bool {
		return definitions.CompareFields(fields[i].field, fields[j].field) < 0
	})

	for _, f := range fields {
		b, err := encodeFieldValue(defs, f.field, f.value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.field.FieldName, err)
		}
		if err := o.serializer.WriteFieldAndValue(*f.field, b); err != nil {
			return nil, fmt.Errorf("field %s: %w", f.field.FieldName, err)
		}
		if f.field.Type == stObjectType {
			o.serializer.Put(serdes.ObjectEndMarker)
		}
	}
	return o.serializer.GetSink(), nil
}

func encodeFieldValue(defs serdesinterfaces.Definitions, fi *definitions.FieldInstance, value any) ([]byte, error) {
	value, err := codeForName(defs, fi.FieldName, value)
	if err != nil {
		return nil, err
	}
	st := GetSerializedType(fi.Type, defs)
	if st == nil {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedType, fi.Type)
	}
	return st.FromJSON(value)
}

// isUNLModify reports whether a TransactionType value, by name or by code,
// is UNLModify.
func isUNLModify(defs serdesinterfaces.Definitions, value any) bool {
	if value == nil {
		return false
	}
	want, err := defs.GetTransactionTypeCodeByTransactionTypeName(unlModifyType)
	if err != nil {
		return false
	}
	code, err := codeForName(defs, transactionTypeField, value)
	if err != nil {
		return false
	}
	got, err := toUint(code, 16)
	return err == nil && got == uint64(want)
}

// codeForName replaces the symbolic name of a transaction type, ledger
// entry type or transaction result with its code. Other values pass
// through.
func codeForName(defs serdesinterfaces.Definitions, fieldName string, value any) (any, error) {
	name, ok := value.(string)
	if !ok {
		return value, nil
	}
	var (
		code int32
		err  error
	)
	switch fieldName {
	case transactionTypeField:
		code, err = defs.GetTransactionTypeCodeByTransactionTypeName(name)
	case ledgerEntryTypeField:
		code, err = defs.GetLedgerEntryTypeCodeByLedgerEntryTypeName(name)
	case transactionResultField:
		code, err = defs.GetTransactionResultTypeCodeByTransactionResultName(name)
	default:
		return value, nil
	}
	if err != nil {
		return nil, err
	}
	return int(code), nil
}

// nameForCode is the inverse of codeForName. Codes with no name are left
// as numbers.
func nameForCode(defs serdesinterfaces.Definitions, fieldName string, value any) any {
	code, ok := value.(int)
	if !ok {
		return value
	}
	var (
		name string
		err  error
	)
	switch fieldName {
	case transactionTypeField:
		name, err = defs.GetTransactionTypeNameByTransactionTypeCode(int32(code))
	case ledgerEntryTypeField:
		name, err = defs.GetLedgerEntryTypeNameByLedgerEntryTypeCode(int32(code))
	case transactionResultField:
		name, err = defs.GetTransactionResultNameByTransactionResultTypeCode(int32(code))
	default:
		return value
	}
	if err != nil {
		return value
	}
	return name
}

// ToJSON reads fields until the object end marker, or for a top level
// object until the input is exhausted.
func (o *STObject) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	if o.depth > MaxNestingDepth {
		return nil, fmt.Errorf("%w: deeper than %d", ErrNestingTooDeep, MaxNestingDepth)
	}
	defs := p.Definitions()
	m := make(map[string]any)

	for {
		if !p.HasMore() {
			if o.nested {
				return nil, ErrMissingEndMarker
			}
			return m, nil
		}

		b, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if b == serdes.ObjectEndMarker {
			if !o.nested {
				return nil, fmt.Errorf("%w: object end at top level", ErrUnexpectedEndMarker)
			}
			_, err = p.ReadByte()
			return m, err
		}

		fi, err := p.ReadField()
		if err != nil {
			return nil, err
		}
		if fi == nil {
			return nil, fmt.Errorf("%w: array end inside object", ErrUnexpectedEndMarker)
		}
		if _, dup := m[fi.FieldName]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, fi.FieldName)
		}

		v, err := readNestedFieldValue(p, fi, o.depth+1)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fi.FieldName, err)
		}
		m[fi.FieldName] = nameForCode(defs, fi.FieldName, v)
	}
}

// readNestedFieldValue decodes the value of field like ReadFieldValue, with
// containers placed at depth.
func readNestedFieldValue(p interfaces.BinaryParser, field *definitions.FieldInstance, depth int) (any, error) {
	switch field.Type {
	case stObjectType:
		return newNestedSTObject(newSerializer(p.Definitions()), depth).ToJSON(p)
	case stArrayType:
		return newNestedSTArray(newSerializer(p.Definitions()), depth).ToJSON(p)
	}
	return ReadFieldValue(p, field)
}
